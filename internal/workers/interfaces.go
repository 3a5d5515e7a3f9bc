// Package workers runs the background jobs of the device host.
//
// A Worker starts its own goroutine in Run and releases it in Stop. Workers
// runs a set of them in order and stops them in reverse order.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Run starts the job. It must not block.
	Run(ctx context.Context)
	// Stop blocks until the job has finished.
	Stop()
}
