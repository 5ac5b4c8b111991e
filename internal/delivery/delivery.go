// Package delivery defines what the binaries start: HTTP servers, queue consumers and schedulers.
package delivery

import "context"

// Delivery is a long-running entry point. Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
