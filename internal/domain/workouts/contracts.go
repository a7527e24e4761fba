package workouts

import "context"

// SetRepository defines the interface for logged set persistence
type SetRepository interface {
	// Create stores a new logged set
	Create(ctx context.Context, set *Set) error
	// List lists logged sets matching the query, newest first
	List(ctx context.Context, query *SetQuery) ([]*Set, error)
}
