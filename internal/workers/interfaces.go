// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's processing, typically in its own goroutine,
// and returns immediately. The worker keeps running until ctx is cancelled
// or Stop is called. Stop blocks until the worker has fully exited and is
// safe to call when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
