package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves every enabled transport until ctx is cancelled or
	// one of them fails, then shuts all of them down gracefully.
	RunServer(ctx context.Context) error
}

// transport is a single listener managed by [Server].
type transport interface {
	// RunServer blocks while serving. A graceful shutdown returns nil.
	RunServer() error

	// Shutdown stops accepting new work and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error

	name() string
}
