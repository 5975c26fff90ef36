// Package delivery defines the contract every transport-facing server
// implements so cmd binaries can run them uniformly.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
