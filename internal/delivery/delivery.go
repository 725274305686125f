// Package delivery defines the contract every transport implementation
// (HTTP server, worker) satisfies so the composition root can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport surface of the application.
type Delivery interface {
	// Serve blocks, serving until the delivery is shut down.
	Serve(ctx context.Context) error
}
