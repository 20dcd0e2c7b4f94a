// Package delivery defines the contract every transport implementation
// (HTTP, workers) satisfies so main can run them uniformly.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the transport
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
