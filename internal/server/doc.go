// Package server binds the HTTP API and gRPC health listeners and keeps them
// running until the process is told to stop.
//
// RunServer installs the signal handling; Run takes an external context,
// which is what tests use. Both listeners are bound before anything is
// served, so a bad address fails fast and leaves no socket behind. On
// cancellation the health status is flipped to NOT_SERVING first, then both
// transports drain within the configured shutdown timeout.
package server
