// Package workers runs the long-lived background loops of the client daemon,
// such as the sync task queue and the connectivity monitor.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled or the loop
// fails. Returning ctx.Err() after cancellation is a normal exit.
//
// Example implementation:
//
//	type ticker struct{ every time.Duration }
//
//	func (t *ticker) Run(ctx context.Context) error {
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return ctx.Err()
//	        case <-time.After(t.every):
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error { return f(ctx) }
