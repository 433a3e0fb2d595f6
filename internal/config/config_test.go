package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "stdio", cfg.Server.Mode)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "stackpad.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Log.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STACKPAD_TRANSPORT_MODE", "http")
	t.Setenv("STACKPAD_SERVER_PORT", "9090")
	t.Setenv("STACKPAD_DB_PATH", ":memory:")
	t.Setenv("STACKPAD_LOG_LEVEL", "debug")
	t.Setenv("STACKPAD_LOG_PATH", "/tmp/stackpad.log")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http", cfg.Server.Mode)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, ":memory:", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/stackpad.log", cfg.Log.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  mode: http\n  port: 7000\n"), 0o644))
	t.Setenv("STACKPAD_CONFIG_PATH", path)
	t.Setenv("STACKPAD_SERVER_PORT", "7001")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http", cfg.Server.Mode)
	require.Equal(t, 7001, cfg.Server.Port, "env wins over the file")
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("STACKPAD_TRANSPORT_MODE", "carrier-pigeon")

	_, err := Load()
	require.Error(t, err)
}
