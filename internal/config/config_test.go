package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesFileAndDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_PASSWORD", "test-password")

	path := writeConfigFile(t, `
server:
  port: 9090
database:
  name: testdb
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "testdb", cfg.Database.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched defaults survive
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30, cfg.JWT.AccessExpiryMin)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_PASSWORD", "env-password")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "3000")

	path := writeConfigFile(t, `
server:
  port: 9090
database:
  host: filehost
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadRequiresDatabasePassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database password")
}

func TestJWTExpiryHelpers(t *testing.T) {
	cfg := JWTConfig{AccessExpiryMin: 15, RefreshExpiryDays: 2}
	assert.Equal(t, "15m0s", cfg.AccessExpiry().String())
	assert.Equal(t, "48h0m0s", cfg.RefreshExpiry().String())
}
