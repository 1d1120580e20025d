package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/handler"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/service"
)

func newTestHandlers(t *testing.T, address string) *handler.Handlers {
	t.Helper()
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: address}}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, ":8080"), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	s, err := NewServer(newTestHandlers(t, cfg.HTTPAddress), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_RunInvalidAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:-1"}
	s, err := NewServer(newTestHandlers(t, cfg.HTTPAddress), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}

func TestHTTPServer_Serve(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handlers := newTestHandlers(t, listener.Addr().String())
	srv := newHTTPServer(handlers.HTTP.Init(), config.Server{HTTPAddress: listener.Addr().String()}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/no-such-route")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	srv.Shutdown()
	assert.NoError(t, <-done)
}
