// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport server (HTTP API, worker endpoint) started by main.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
