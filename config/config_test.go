package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsApplyWhenNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "missing-config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(10*1000*1000), cfg.MaxDownloadSize)
	assert.True(t, cfg.KeepMedia)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nmax_download_size: 5MB\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(5*1000*1000), cfg.MaxDownloadSize)
}

func TestLoad_EnvVarOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("phone: \"+10000000000\"\n"), 0644))

	t.Setenv("TG_PHONE", "+19998887777")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "+19998887777", cfg.Phone)
}

func TestLoad_InvalidMaxDownloadSizeErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_download_size: not-a-size\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_GetLogDirDerivesFromLogPath(t *testing.T) {
	cfg := &Config{LogPath: "/tmp/tg/tg.log"}
	assert.Equal(t, "/tmp/tg", cfg.GetLogDir())
}

func TestConfig_IsDebugModeChecksLogLevel(t *testing.T) {
	assert.True(t, (&Config{LogLevel: "debug"}).IsDebugMode())
	assert.False(t, (&Config{LogLevel: "info"}).IsDebugMode())
}
