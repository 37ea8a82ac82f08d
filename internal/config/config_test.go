package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/config"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navrules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
resolver:
  query_timeout: 500ms
  fallthrough: true
sources:
  - type: redis
    options:
      addr: "redis:6379"
      db: 2
      prefix: "nav:"
  - type: static
    options:
      path: "navigation.yaml"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Resolver.QueryTimeout.Std())
	assert.True(t, cfg.Resolver.Fallthrough)

	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, config.SourceRedis, cfg.Sources[0].Type)

	redisOpts, err := cfg.Sources[0].Redis()
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", redisOpts.Addr)
	assert.Equal(t, 2, redisOpts.DB)
	assert.Equal(t, "nav:", redisOpts.Prefix)

	staticOpts, err := cfg.Sources[1].Static()
	require.NoError(t, err)
	assert.Equal(t, "navigation.yaml", staticOpts.Path)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
sources:
  - type: redis
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Resolver.QueryTimeout.Std())
	assert.False(t, cfg.Resolver.Fallthrough)

	redisOpts, err := cfg.Sources[0].Redis()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", redisOpts.Addr)
}

func TestLoad_RejectsUnknownSourceType(t *testing.T) {
	path := writeConfig(t, `
sources:
  - type: carrier-pigeon
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestLoad_RejectsEmptySources(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `
resolver:
  query_timeout: quickly
sources:
  - type: redis
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestSourceConfig_RejectsUnknownOptions(t *testing.T) {
	path := writeConfig(t, `
sources:
  - type: redis
    options:
      addr: "localhost:6379"
      ttl: 30s
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	_, err = cfg.Sources[0].Redis()
	assert.Error(t, err)
}

func TestStaticOptions_RequirePath(t *testing.T) {
	path := writeConfig(t, `
sources:
  - type: static
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	_, err = cfg.Sources[0].Static()
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, config.SourceRedis, cfg.Sources[0].Type)
}
