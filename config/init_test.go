package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "3000", c.Port)
	require.Equal(t, ModeDebug, c.Mode)
	require.Equal(t, 300, c.Cache.OptionsTTL)
	require.Empty(t, c.Redis.Host)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
Port: "4000"
Mode: Release
Mysql:
  Host: db.internal
  DBName: registrations
Cache:
  options_ttl: 10
Redis:
  host: cache.internal
  port: "6380"
  db: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	c, err := load(dir)
	require.NoError(t, err)
	require.Equal(t, "4000", c.Port)
	require.Equal(t, ModeRelease, c.Mode)
	require.Equal(t, "db.internal", c.Mysql.Host)
	require.Equal(t, "registrations", c.Mysql.DBName)
	require.Equal(t, "3306", c.Mysql.Port)
	require.Equal(t, 10, c.Cache.OptionsTTL)
	require.Equal(t, "cache.internal", c.Redis.Host)
	require.Equal(t, "6380", c.Redis.Port)
	require.Equal(t, 2, c.Redis.DB)

	t.Setenv("APP_PORT", "5000")
	t.Setenv("APP_CACHE_OPTIONS_TTL", "0")
	t.Setenv("APP_MODE", "staging")
	t.Setenv("APP_REDIS_PASSWORD", "secret")
	c, err = load(dir)
	require.NoError(t, err)
	require.Equal(t, "5000", c.Port)
	require.Zero(t, c.Cache.OptionsTTL)
	require.Equal(t, "secret", c.Redis.Password)
	require.Equal(t, "cache.internal", c.Redis.Host)
	// 未知模式按 debug 处理
	require.Equal(t, ModeDebug, c.Mode)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("Port: [unterminated"), 0o644))
	_, err := load(dir)
	require.Error(t, err)
}
