package state

import "context"

// Repository describes state persistence needs from use cases.
type Repository interface {
	// Insert stores one row in its own unit of work.
	Insert(ctx context.Context, row State) error
}
