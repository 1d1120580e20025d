package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "hostname", input: "example.com:80", wantErr: true},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{
		"-a", "localhost:8081",
		"-d", "postgres://localhost/reports",
		"-driver", "pgx",
		"-config", "/tmp/config.json",
		"-token-sign-key", "key",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-employee-role-id", "5",
		"-request-timeout", "10s",
		"-lookup-timeout", "1s",
		"-concurrency", "3",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/reports", cfg.Storage.DB.DSN)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, time.Second, cfg.Storage.DB.LookupTimeout)
	assert.Equal(t, "/tmp/config.json", cfg.FilePath)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, int64(5), cfg.App.EmployeeRoleID)
	assert.Equal(t, 3, cfg.Validation.Concurrency)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-c", "config.yml"})
	require.NoError(t, err)
	assert.Equal(t, "config.yml", cfg.FilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-a", "nope"})
	assert.Error(t, err)
}
