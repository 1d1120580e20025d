package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done. It returns an error only
	// when the listener cannot be opened or serving fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
