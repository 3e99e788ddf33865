// Package delivery defines the contract a transport implementation exposes
// to the application entry point.
package delivery

import "context"

// Delivery is a serving transport. Serve blocks until the server stops or
// fails; shutdown is driven by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
