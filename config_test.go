package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err, "a missing optional config falls back to defaults")
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teeko.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: 4\nseed: 99\nlog_level: debug\n"), 0644))

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Depth)
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teeko.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: 2\n"), 0644))

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Depth)
	require.Equal(t, defaultConfig().LogLevel, cfg.LogLevel)
}

func TestLoadConfigRejectsBadDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teeko.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: 0\n"), 0644))

	_, err := loadConfig(path, true)
	require.Error(t, err)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teeko.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0644))

	_, err := loadConfig(path, true)
	require.Error(t, err)
}
