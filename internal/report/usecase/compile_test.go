package usecase

import (
	"context"
	"testing"
	"time"

	"diagnosis-srv/internal/model"
	"diagnosis-srv/internal/report"
	repoMocks "diagnosis-srv/internal/report/repository/mocks"
	visMocks "diagnosis-srv/internal/visualization/mocks"
	"diagnosis-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	repo  *repoMocks.PostgresRepository
	cache *repoMocks.CacheRepository
	vis   *visMocks.UseCase
}

func newTestUseCase(t *testing.T) (*implUseCase, testDeps) {
	deps := testDeps{
		repo:  repoMocks.NewPostgresRepository(t),
		cache: repoMocks.NewCacheRepository(t),
		vis:   visMocks.NewUseCase(t),
	}
	uc := New(deps.repo, deps.cache, deps.vis, log.NewNop(), report.Config{}).(*implUseCase)
	return uc, deps
}

func scenarioReport() model.Report {
	return model.Report{
		ID:              7,
		PatientUsername: "alice",
		Filename:        "scan_7.png",
		CreatedAt:       time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		ModelA: model.ModelResult{
			PredictedCategory: "Glioma",
			Confidence:        model.ConfidenceMap{"Glioma": 92, "Meningioma": 5, "No Tumor": 2, "Pituitary": 1},
		},
		ModelB: model.ModelResult{
			PredictedCategory: "No Tumor",
			Confidence:        model.ConfidenceMap{"Glioma": 3, "Meningioma": 4, "No Tumor": 90, "Pituitary": 3},
		},
		VisualizationA: "/img/a.png",
	}
}

func pageTitles(doc model.Document) []string {
	titles := make([]string, 0, len(doc.Pages))
	for _, p := range doc.Pages {
		titles = append(titles, p.Title)
	}
	return titles
}

func TestCompile_Scenario(t *testing.T) {
	tests := []struct {
		name       string
		image      model.Image
		wantNotice string
	}{
		{"fetch succeeds", model.EncodedImage("image/png", []byte("png")), ""},
		{"fetch fails", model.UnavailableImage(), report.ImageNotice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUseCase(t)
			sc := model.Scope{Role: model.RoleDoctor, AccessToken: "tok"}
			deps.vis.On("FetchAndEncode", mock.Anything, sc, "/img/a.png").Return(tt.image).Once()

			doc, err := uc.Compile(context.Background(), sc, report.CompileInput{Report: scenarioReport()})
			require.NoError(t, err)

			assert.Equal(t, int64(7), doc.ReportID)
			assert.Equal(t, []string{
				"Brain Tumor Classification Report",
				"Predictions",
				"Model A Confidence Scores",
				"Model B Confidence Scores",
				"Doctor Notes",
				"Model A Visualization",
			}, pageTitles(doc))

			header := doc.Pages[0]
			assert.Equal(t, model.PageHeader, header.Kind)
			assert.Equal(t, []model.Field{
				{Label: "Patient Username", Value: "alice"},
				{Label: "Filename", Value: "scan_7.png"},
				{Label: "Date", Value: "2024-05-06 07:08:09 UTC"},
			}, header.Fields)

			summary := doc.Pages[1].Table
			require.Len(t, summary.Rows, 2)
			assert.Equal(t, "Model A: Glioma (92)", summary.Rows[0].Summary())
			assert.Equal(t, "Model B: No Tumor (90)", summary.Rows[1].Summary())
			assert.Equal(t, model.SeverityCritical, summary.Rows[0].Severity)
			assert.Equal(t, model.SeverityNormal, summary.Rows[1].Severity)

			assert.Len(t, doc.Pages[2].Table.Rows, 4)
			assert.Len(t, doc.Pages[3].Table.Rows, 4)
			assert.Equal(t, "N/A", doc.Pages[4].Text)

			images := doc.ImagePages()
			require.Len(t, images, 1)
			assert.Equal(t, tt.image, *images[0].Image)
			assert.Equal(t, tt.wantNotice, images[0].Notice)
		})
	}
}

func TestCompile_MissingCategories(t *testing.T) {
	uc, _ := newTestUseCase(t)
	rpt := model.Report{
		ID:     1,
		ModelA: model.ModelResult{PredictedCategory: "Meningioma", Confidence: model.ConfidenceMap{"Glioma": 10}},
		ModelB: model.ModelResult{PredictedCategory: "Astrocytoma"},
	}

	doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{Report: rpt})
	require.NoError(t, err)

	summary := doc.Pages[1].Table
	assert.Equal(t, []string{"Model A", "Meningioma", "N/A"}, summary.Rows[0].Cells)
	assert.Equal(t, []string{"Model B", "Astrocytoma", "N/A"}, summary.Rows[1].Cells)
	assert.Equal(t, model.SeverityNeutral, summary.Rows[1].Severity)

	breakdownA := doc.Pages[2].Table
	assert.Equal(t, []string{"Glioma", "10"}, breakdownA.Rows[0].Cells)
	for _, row := range breakdownA.Rows[1:] {
		assert.Equal(t, "N/A", row.Cells[1])
	}
	for _, row := range doc.Pages[3].Table.Rows {
		assert.Equal(t, "N/A", row.Cells[1])
	}

	header := doc.Pages[0]
	assert.Equal(t, "Unknown", header.Fields[0].Value)
	assert.Equal(t, "N/A", header.Fields[2].Value)
}

func TestCompile_NoVisualizations(t *testing.T) {
	uc, deps := newTestUseCase(t)
	rpt := scenarioReport()
	rpt.VisualizationA = ""

	doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{Report: rpt})
	require.NoError(t, err)

	assert.Len(t, doc.Pages, 5)
	assert.Empty(t, doc.ImagePages())
	deps.vis.AssertNotCalled(t, "FetchAndEncode", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompile_OnlySecondVisualizationFails(t *testing.T) {
	uc, deps := newTestUseCase(t)
	rpt := scenarioReport()
	rpt.VisualizationA = ""
	rpt.VisualizationB = "img/b.png"
	deps.vis.On("FetchAndEncode", mock.Anything, mock.Anything, "img/b.png").Return(model.UnavailableImage()).Once()

	doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{Report: rpt})
	require.NoError(t, err)

	images := doc.ImagePages()
	require.Len(t, images, 1)
	assert.Equal(t, "Model B Visualization", images[0].Title)
	assert.Equal(t, report.ImageNotice, images[0].Notice)
}

func TestCompile_BreakdownOrder(t *testing.T) {
	uc, _ := newTestUseCase(t)

	// Build the map in several insertion orders
	orders := [][]string{
		{"Pituitary", "No Tumor", "Meningioma", "Glioma"},
		{"No Tumor", "Glioma", "Pituitary", "Meningioma"},
	}
	for _, order := range orders {
		m := model.ConfidenceMap{}
		for i, cat := range order {
			m[cat] = float64(i)
		}
		doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{
			Report: model.Report{ID: 2, ModelA: model.ModelResult{PredictedCategory: "Glioma", Confidence: m}},
		})
		require.NoError(t, err)

		var got []string
		for _, row := range doc.Pages[2].Table.Rows {
			got = append(got, row.Cells[0])
		}
		assert.Equal(t, []string{"Glioma", "Meningioma", "No Tumor", "Pituitary"}, got)
	}
}

func TestCompile_Notes(t *testing.T) {
	uc, _ := newTestUseCase(t)
	rpt := model.Report{ID: 3, ClinicianNotes: "stored"}

	tests := []struct {
		name     string
		override string
		stored   string
		want     string
	}{
		{"override wins", "fresh", "stored", "fresh"},
		{"blank override falls back", "  ", "stored", "stored"},
		{"nothing", "", "", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpt.ClinicianNotes = tt.stored
			doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{Report: rpt, NotesOverride: tt.override})
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Pages[4].Text)
		})
	}
}

func TestCompile_Idempotent(t *testing.T) {
	uc, deps := newTestUseCase(t)
	img := model.EncodedImage("image/png", []byte("same"))
	deps.vis.On("FetchAndEncode", mock.Anything, mock.Anything, "/img/a.png").Return(img).Twice()

	in := report.CompileInput{Report: scenarioReport(), NotesOverride: "n"}
	first, err := uc.Compile(context.Background(), model.Scope{}, in)
	require.NoError(t, err)
	second, err := uc.Compile(context.Background(), model.Scope{}, in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompile_ConfigurableNamesAndZone(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	uc := New(nil, nil, visMocks.NewUseCase(t), log.NewNop(), report.Config{
		ModelAName: "Custom CNN",
		ModelBName: "ResNet-50",
		Location:   loc,
	})

	rpt := scenarioReport()
	rpt.VisualizationA = ""
	rpt.ModelA.Confidence["Glioma"] = 92.5

	doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{Report: rpt})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-06 14:08:09 ICT", doc.Pages[0].Fields[2].Value)
	assert.Equal(t, "Custom CNN: Glioma (92.5)", doc.Pages[1].Table.Rows[0].Summary())
	assert.Equal(t, "ResNet-50 Confidence Scores", doc.Pages[3].Title)
}

func TestValidateDocument(t *testing.T) {
	assert.Error(t, validateDocument(model.Document{}))
	assert.Error(t, validateDocument(model.Document{Pages: []model.Page{{Kind: model.PageTable, Title: "t"}}}))
	assert.Error(t, validateDocument(model.Document{Pages: []model.Page{{Kind: model.PageImage, Title: "i"}}}))
	assert.Error(t, validateDocument(model.Document{Pages: []model.Page{{Kind: "chart", Title: "c"}}}))
	assert.Error(t, validateDocument(model.Document{Pages: []model.Page{{
		Kind:  model.PageTable,
		Title: "t",
		Table: &model.Table{Columns: []string{"a", "b"}, Rows: []model.TableRow{{Cells: []string{"x"}}}},
	}}}))
	assert.NoError(t, validateDocument(model.Document{Pages: []model.Page{{Kind: model.PageNotes, Title: "n"}}}))
}

func TestCompile_WaitsForSlowFetch(t *testing.T) {
	uc, deps := newTestUseCase(t)
	rpt := scenarioReport()
	rpt.VisualizationB = "/img/b.png"

	release := make(chan struct{})
	deps.vis.On("FetchAndEncode", mock.Anything, mock.Anything, "/img/a.png").
		Return(model.EncodedImage("image/png", []byte("a"))).Once()
	deps.vis.On("FetchAndEncode", mock.Anything, mock.Anything, "/img/b.png").
		Run(func(mock.Arguments) { <-release }).
		Return(model.EncodedImage("image/jpeg", []byte("b"))).Once()

	type result struct {
		doc model.Document
		err error
	}
	done := make(chan result, 1)
	go func() {
		doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{Report: rpt})
		done <- result{doc, err}
	}()

	select {
	case <-done:
		t.Fatal("Compile returned before the second fetch settled")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	var res result
	select {
	case res = <-done:
	case <-time.After(time.Second):
		t.Fatal("Compile did not return after the second fetch settled")
	}
	require.NoError(t, res.err)

	images := res.doc.ImagePages()
	require.Len(t, images, 2)
	assert.Equal(t, "Model A Visualization", images[0].Title)
	assert.Equal(t, "Model B Visualization", images[1].Title)
	require.True(t, images[1].Image.IsEncoded())
	assert.Equal(t, "image/jpeg", images[1].Image.MIMEType)
	assert.Empty(t, images[1].Notice)
}

func TestCompile_PresentPathAlwaysHasPage(t *testing.T) {
	uc, deps := newTestUseCase(t)
	deps.vis.On("FetchAndEncode", mock.Anything, mock.Anything, "/img/a.png").Return(model.Image{}).Once()

	doc, err := uc.Compile(context.Background(), model.Scope{}, report.CompileInput{Report: scenarioReport()})
	require.NoError(t, err)

	images := doc.ImagePages()
	require.Len(t, images, 1)
	assert.Equal(t, report.ImageNotice, images[0].Notice)
	assert.Equal(t, model.ImageUnavailable, images[0].Image.Status)
}
