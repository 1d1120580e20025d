// Package server runs the HTTP server of the class-reports backend.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
