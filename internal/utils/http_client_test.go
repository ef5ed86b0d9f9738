package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(logger.Nop())

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_NilLogger(t *testing.T) {
	client := NewHTTPClient(nil)

	require.NotNil(t, client)
	assert.NotNil(t, client.R())
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(logger.Nop())
	client2 := NewHTTPClient(logger.Nop())

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestRestyLogger_ImplementsInterface(t *testing.T) {
	var l resty.Logger = NewRestyLogger(logger.Nop())
	assert.NotNil(t, l)
}

func TestRestyLogger_WritesLevels(t *testing.T) {
	var buf bytes.Buffer
	base := logger.Nop()
	base.Logger = base.Output(&buf).Level(zerolog.DebugLevel)

	l := NewRestyLogger(base)

	tests := []struct {
		name  string
		write func(format string, v ...interface{})
		level string
	}{
		{name: "error", write: l.Errorf, level: "error"},
		{name: "warn", write: l.Warnf, level: "warn"},
		{name: "debug", write: l.Debugf, level: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.write("attempt %d", 1)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "resty", entry["component"])
			assert.Equal(t, "attempt 1", entry["message"])
		})
	}
}
