package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_FansOutToFile(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "demo.log")

	logger, closer, err := newLogger(LogConfig{Level: "info", File: path}, &stderr)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("Starting server", "addr", "localhost:8080")
	require.NoError(t, closer.Close())

	assert.Contains(t, stderr.String(), "msg=\"Starting server\"")
	assert.NotContains(t, stderr.String(), "hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "Starting server", entry["msg"])
	assert.Equal(t, "localhost:8080", entry["addr"])
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := newLogger(LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
