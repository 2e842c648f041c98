// Package server runs the users API transports side by side.
//
// RunServer starts the HTTP listener and, when configured, the gRPC health
// listener, then blocks until the context is cancelled or one of them fails.
// Both are shut down together with a bounded grace period.
package server
