// Package delivery defines the inbound transport contract of the service.
package delivery

import "context"

// Delivery is implemented by every inbound transport (HTTP today).
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
