package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestInit(t *testing.T) {
	l := Init(ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
	assert.NotNil(t, l)
	l.Debugf(context.Background(), "log.TestInit: %s", "ok")

	nop := NewNop()
	nop.Errorf(context.Background(), "discarded %d", 1)
}
