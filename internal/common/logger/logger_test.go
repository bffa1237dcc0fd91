package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestZapAdapter_FieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"taskType": "toggle-favorite"})

	log.Info("favorite toggled", map[string]interface{}{"propertyId": "prop-1"})
	log.WithError(errors.New("boom")).Error("remote failed", nil)
	log.Warn("with error field", map[string]interface{}{"error": errors.New("bad")})

	entries := logs.All()
	assert.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "toggle-favorite", first["taskType"])
	assert.Equal(t, "prop-1", first["propertyId"])

	second := entries[1].ContextMap()
	assert.Equal(t, "boom", second["error"])

	third := entries[2].ContextMap()
	assert.Equal(t, "bad", third["error"])
}

func TestNoOpLogger_DoesNotPanic(t *testing.T) {
	log := NewNoOpLogger()
	assert.NotPanics(t, func() {
		log.With(map[string]interface{}{"a": 1}).Debug("debug", nil)
	})
}
