// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/etc/reports/config.yaml",

		"APP_TOKEN_SIGN_KEY":     "jwt_secret",
		"APP_TOKEN_ISSUER":       "test_issuer",
		"APP_TOKEN_DURATION":     "1h",
		"APP_EMPLOYEE_ROLE_ID":   "3",
		"APP_PASSWORD_HASH_COST": "12",

		"STORAGE_DB_DRIVER":         "sqlite3",
		"STORAGE_DB_DATABASE_URI":   "file:reports.db",
		"STORAGE_DB_LOOKUP_TIMEOUT": "2s",
		"STORAGE_DB_LOOKUP_RETRIES": "5",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"VALIDATION_CONCURRENCY": "8",

		"CLIENT_ADDRESS": "http://localhost:8080",
		"CLIENT_TIMEOUT": "15s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/reports/config.yaml", cfg.FilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, int64(3), cfg.App.EmployeeRoleID)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:reports.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.LookupTimeout)
	assert.Equal(t, 5, cfg.Storage.DB.LookupRetries)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 8, cfg.Validation.Concurrency)

	assert.Equal(t, "http://localhost:8080", cfg.Client.Address)
	assert.Equal(t, 15*time.Second, cfg.Client.Timeout)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "forever"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"VALIDATION_CONCURRENCY": "many"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_TOKEN_DURATION",
		"APP_EMPLOYEE_ROLE_ID",
		"APP_PASSWORD_HASH_COST",
		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",
		"STORAGE_DB_LOOKUP_TIMEOUT",
		"STORAGE_DB_LOOKUP_RETRIES",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"VALIDATION_CONCURRENCY",
		"CLIENT_ADDRESS",
		"CLIENT_TIMEOUT",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
