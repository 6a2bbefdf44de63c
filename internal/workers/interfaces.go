// Package workers runs the long-lived background jobs of a process next to
// its transport servers.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context)

func (f Func) Run(ctx context.Context) { f(ctx) }
