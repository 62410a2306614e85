package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// Insert stores one row in its own unit of work.
	Insert(ctx context.Context, row Team) error
}
