package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	require.NoError(t, LoadConfig(t.TempDir()))

	assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, Cfg.Log.Level)
	assert.False(t, Cfg.App.SingleUser)
	assert.Equal(t, []string{"*"}, Cfg.CORS.AllowedOrigins)

	loc, err := Cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: ":9090"
database:
  url: "sqlite://from-file.db"
app:
  single_user: true
  timezone: "Asia/Tokyo"
`)
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://from-env")

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, ":9090", Cfg.Server.Port)
	assert.Equal(t, "debug", Cfg.Log.Level, "環境変数が優先")
	assert.Equal(t, "postgres://from-env", Cfg.Database.URL)
	assert.True(t, Cfg.App.SingleUser)

	loc, err := Cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestLoadConfig_InvalidTimezone(t *testing.T) {
	dir := writeConfig(t, "app:\n  timezone: \"Mars/Olympus\"\n")
	err := LoadConfig(dir)
	assert.Error(t, err)
}
