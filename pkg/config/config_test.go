package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  access_secret: test-access
  refresh_secret: test-refresh
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, 1800*time.Second, cfg.Cache.LikesTTL)
	assert.Equal(t, "export:playlists", cfg.Export.Queue)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
cache:
  likes_ttl: 60s
jwt:
  access_secret: test-access
  refresh_secret: test-refresh
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Cache.LikesTTL)
}

func TestLoadRequiresJWTSecrets(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	path := writeConfig(t, `
cache:
  likes_ttl: 0s
jwt:
  access_secret: test-access
  refresh_secret: test-refresh
`)

	_, err := Load(path)
	assert.Error(t, err)
}
