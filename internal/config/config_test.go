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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9090"
storage:
  dsn: "postgres://localhost/cpucatalog?sslmode=disable"
auth:
  secret: "test-secret"
  admin_password: "hunter2"
watcher:
  interval: 5m
  feeds:
    - name: amd-newsroom
      url: https://example.com/amd.rss
      family: AMD EPYC
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/cpucatalog?sslmode=disable", cfg.Storage.DSN)
	assert.Equal(t, "hunter2", cfg.Auth.AdminPassword)
	assert.Equal(t, 5*time.Minute, cfg.Watcher.Interval)
	require.Len(t, cfg.Watcher.Feeds, 1)
	assert.Equal(t, "AMD EPYC", cfg.Watcher.Feeds[0].Family)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.Watcher.Interval)
	assert.Equal(t, "cpu-announcements", cfg.Queue.Topic)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CPUCATALOG_SERVER_PORT", ":7070")

	cfg, err := Load(writeConfig(t, `
server:
  port: ":9090"
`))
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
