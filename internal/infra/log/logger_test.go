package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"locgate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = parseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = parseLogLevel("verbose")
	require.Error(t, err)
}

func TestNewWithWriter_JSONCarriesServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "zoned"
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("zones loaded", slog.Int("zones", 2))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "zoned", record["service"])
	assert.Equal(t, "zones loaded", record["msg"])
	assert.InDelta(t, 2, record["zones"], 0)
}
