// Package delivery holds the inbound surfaces of a service: consumers, the admin API and the shell.
package delivery

import "context"

// Delivery is a long running surface started by the application after fx has built it.
type Delivery interface {
	Serve(ctx context.Context) error
}
