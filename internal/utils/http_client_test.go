package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	require.NotNil(t, client.Client)
	assert.Equal(t, time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestNewHTTPClient_NoTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost", 0)
	assert.Zero(t, client.GetClient().Timeout)
}
