package redis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedis_Validation(t *testing.T) {
	_, err := NewRedis(RedisConfig{})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = NewRedis(RedisConfig{Host: "localhost", Port: 70000})
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(ErrNil))
	assert.True(t, IsNil(fmt.Errorf("get: %w", ErrNil)))
	assert.False(t, IsNil(fmt.Errorf("boom")))
}
