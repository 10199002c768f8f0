package redis

import (
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report/repository"
	"diagnosis-srv/pkg/log"
	pkgRedis "diagnosis-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	m.ttls[key] = ttl
	return nil
}

func (m *memoryRedis) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[key]
	if !ok {
		return "", pkgRedis.ErrNil
	}
	return v, nil
}

func (m *memoryRedis) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for key := range m.values {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.values, key)
			n++
		}
	}
	return n, nil
}

func (m *memoryRedis) Close() error                   { return nil }
func (m *memoryRedis) Ping(ctx context.Context) error { return m.err }

func TestListKey(t *testing.T) {
	assert.Equal(t, "reports:list:*all*", listKey(""))
	assert.Equal(t, "reports:list:patient:alice", listKey("alice"))
}

func TestCachedConversion(t *testing.T) {
	rpt := model.Report{
		ID:              3,
		PatientUsername: "alice",
		CreatedAt:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		ModelA:          model.ModelResult{PredictedCategory: "Glioma", Confidence: model.ConfidenceMap{"Glioma": 90}},
		VisualizationB:  "gradcam/3.png",
		ClinicianNotes:  "follow up",
	}
	assert.Equal(t, rpt, fromCached(toCached(rpt)))
}

func TestSaveAndGetReports(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryRedis()
	repo := New(mem, log.NewNop(), time.Minute)

	_, err := repo.GetReports(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	reports := []model.Report{
		{ID: 2, PatientUsername: "alice", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 1, PatientUsername: "alice", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, repo.SaveReports(ctx, "alice", reports))
	assert.Equal(t, time.Minute, mem.ttls["reports:list:patient:alice"])

	got, err := repo.GetReports(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, reports, got)

	_, err = repo.GetReports(ctx, "")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestGetReports_CorruptEntry(t *testing.T) {
	mem := newMemoryRedis()
	mem.values[listKey("")] = "{not json"
	repo := New(mem, log.NewNop(), 0)

	_, err := repo.GetReports(context.Background(), "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}

func TestInvalidateReports(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryRedis()
	mem.values["unrelated"] = "keep"
	repo := New(mem, log.NewNop(), time.Minute)

	require.NoError(t, repo.SaveReports(ctx, "", nil))
	require.NoError(t, repo.SaveReports(ctx, "bob", nil))
	require.NoError(t, repo.InvalidateReports(ctx))

	assert.Equal(t, map[string]string{"unrelated": "keep"}, mem.values)

	mem.err = errors.New("connection refused")
	assert.Error(t, repo.InvalidateReports(ctx))
}

func TestSaveReports_DefaultTTL(t *testing.T) {
	mem := newMemoryRedis()
	repo := New(mem, log.NewNop(), 0)

	require.NoError(t, repo.SaveReports(context.Background(), "", nil))
	assert.Equal(t, 30*time.Second, mem.ttls[listKey("")])
}
