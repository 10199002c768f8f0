package kafka

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.Error(t, validateProducerConfig(Config{Topic: "t"}))
	assert.Error(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}}))
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}, Topic: "t"}))
}

func TestNewSaramaConfig(t *testing.T) {
	cfg := newSaramaConfig()
	assert.Equal(t, sarama.WaitForLocal, cfg.Producer.RequiredAcks)
	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, ProducerRetryMax, cfg.Producer.Retry.Max)
	assert.Equal(t, KafkaVersion, cfg.Version)
}

func TestPublish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, newSaramaConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"event":"export.ready"}` {
			return errors.New("unexpected payload")
		}
		return nil
	})
	p := &producerImpl{producer: sp, topic: "diagnosis.exports"}

	require.NoError(t, p.Publish([]byte("job-1"), []byte(`{"event":"export.ready"}`), Header{Key: "event", Value: "export.ready"}))
	require.NoError(t, p.Close())
}

func TestPublishFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, newSaramaConfig())
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	p := &producerImpl{producer: sp, topic: "diagnosis.exports"}

	err := p.Publish([]byte("k"), []byte("v"))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestHealthCheck(t *testing.T) {
	assert.Error(t, (&producerImpl{}).HealthCheck())
	assert.NoError(t, (&producerImpl{}).Close())
}
