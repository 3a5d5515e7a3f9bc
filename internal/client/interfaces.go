// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable device hosts.
type Client interface {
	// Run starts the device host and blocks until exit.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
