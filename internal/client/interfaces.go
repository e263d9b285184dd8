// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable client application.
type Client interface {
	// Run executes the command described by args and returns when it is done.
	Run(ctx context.Context, args []string) error
}
