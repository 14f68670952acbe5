package order

import "context"

// Repository defines the order archive operations.
type Repository interface {
	Save(ctx context.Context, o *Order) error

	// Newest first.
	List(ctx context.Context) ([]Order, error)
}
