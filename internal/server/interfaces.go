package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received and then
	// shuts down gracefully.
	RunServer() error

	// Run serves until ctx is done and then shuts down gracefully. It returns
	// early with an error when a listener cannot be bound or a transport
	// fails.
	Run(ctx context.Context) error
}
