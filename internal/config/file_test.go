package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	p := writeTempConfig(t, "config.json", `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"employee_role_id": 2,
			"password_hash_cost": 11
		},
		"storage": {
			"db": {"driver": "pgx", "dsn": "postgres://localhost/reports", "lookup_timeout": "2s", "lookup_retries": 1}
		},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"validation": {"concurrency": 6},
		"client": {"address": "http://localhost:8080", "timeout": 5000000000}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, int64(2), cfg.App.EmployeeRoleID)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/reports", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.LookupTimeout)
	assert.Equal(t, 1, cfg.Storage.DB.LookupRetries)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 6, cfg.Validation.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeTempConfig(t, "config.yml", `
app:
  token_sign_key: jwt_secret
  token_duration: 45m
storage:
  db:
    driver: sqlite3
    dsn: file:reports.db
    lookup_timeout: 500ms
validation:
  concurrency: 2
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:reports.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 500*time.Millisecond, cfg.Storage.DB.LookupTimeout)
	assert.Equal(t, 2, cfg.Validation.Concurrency)
}

func TestParseFile_EmptyYAML(t *testing.T) {
	p := writeTempConfig(t, "empty.yaml", "")

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile("/does/not/exist.json")
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		p := writeTempConfig(t, "config.toml", "a = 1")
		_, err := parseFile(p)
		assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
	})

	t.Run("malformed json", func(t *testing.T) {
		p := writeTempConfig(t, "config.json", "{")
		_, err := parseFile(p)
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		p := writeTempConfig(t, "config.json", `{"server": {"request_timeout": "soon"}}`)
		_, err := parseFile(p)
		assert.Error(t, err)
	})

	t.Run("invalid yaml duration", func(t *testing.T) {
		p := writeTempConfig(t, "config.yaml", "server:\n  request_timeout: soon\n")
		_, err := parseFile(p)
		assert.Error(t, err)
	})
}
