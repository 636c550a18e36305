package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "mixvenn", configBaseName)
	assert.Equal(t, "mixvenn.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "log", inputLogFlagName)
	assert.Equal(t, "delta", inputDeltaFlagName)
	assert.Equal(t, "export", exportFlagName)
	assert.Equal(t, "input.log", inputLogKey)
	assert.Equal(t, "input.delta", inputDeltaKey)
	assert.Equal(t, "report.export", reportExportKey)
	assert.Equal(t, "report.interactive", interactiveKey)
	assert.Equal(t, ".mixvenn.log", defaultLogFilename)
	assert.Equal(t, "MIXVENN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"8", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "test.log"), true)

	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))

	configureLogger(filepath.Join(t.TempDir(), "test.log"), false)
	assert.False(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
}

// captureLog routes the default slog logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))

	return buf
}

func TestLoadConfig_MissingFileIsSilent(t *testing.T) {
	chdir(t, t.TempDir())
	logged := captureLog(t)

	require.NoError(t, readConfig())

	loadConfig()
	assert.Empty(t, logged.String())
}

func TestLoadConfig_MalformedFileWarns(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("input: [unclosed\n"), 0o600))
	logged := captureLog(t)

	require.Error(t, readConfig())

	loadConfig()
	assert.Contains(t, logged.String(), "failed to read config file")
}

// chdir changes the working directory to dir and restores it when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
