// Package delivery defines the contract every transport entry point implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, etc.) started by
// the application container. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
