package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"routecast/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "routecast"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestBuild_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(&buf, testConfig("info", false))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("Model loaded", slog.Int("trips", 42))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Model loaded", record["msg"])
	assert.Equal(t, "routecast", record["service"])
	assert.Equal(t, "develop", record["env"])
	assert.Equal(t, 42.0, record["trips"])
}

func TestBuild_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(&buf, testConfig("debug", true))
	require.NoError(t, err)

	logger.Debug("tile skipped")

	assert.Contains(t, buf.String(), `msg="tile skipped"`)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "DEBUG", expected: slog.LevelDebug},
		{input: "", expected: slog.LevelInfo},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
