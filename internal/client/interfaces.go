// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle of the long-running client daemon.
type Client interface {
	// Run serves background sync until ctx is cancelled.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
