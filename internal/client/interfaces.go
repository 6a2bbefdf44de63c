// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run executes the sub-command named by args[0] and returns when it is
	// done.
	Run(ctx context.Context, args []string) error
}
