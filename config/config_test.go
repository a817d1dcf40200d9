package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memoryConfig = `
env:
  env: develop
  serviceName: tempo-test
  log:
    level: info
http:
  port: 9090
storage:
  driver: memory
ingestion:
  browserApps: [chrome, zen]
`

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_AppliesFileAndEnv(t *testing.T) {
	writeConfig(t, memoryConfig)
	t.Setenv("INGESTION_TIMEOUT", "9s")
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "tempo-test", cfg.Env.ServiceName)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, 9*time.Second, cfg.Ingestion.Timeout)
	assert.Equal(t, []string{"chrome", "zen"}, cfg.Ingestion.BrowserApps)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, defaultIngestionTimeout, cfg.Ingestion.Timeout)
	assert.Equal(t, "UTC", cfg.Stats.DefaultTimeZone)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Storage.SlowQueryThreshold)
	assert.Nil(t, cfg.PubSub)

	cfg.PubSub = &PubSubConfig{Provider: "local"}
	applyDefaults(cfg)
	assert.Equal(t, defaultPublishTimeout, cfg.PubSub.PublishTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	require.Error(t, cfg.Validate(), "postgres driver without a postgres section")

	cfg.Storage.Driver = "memory"
	require.NoError(t, cfg.Validate())

	cfg.Storage.Driver = "sqlite"
	require.Error(t, cfg.Validate())

	cfg.Storage.Driver = "memory"
	cfg.Stats.DefaultTimeZone = "Nowhere/Void"
	require.Error(t, cfg.Validate())
}
