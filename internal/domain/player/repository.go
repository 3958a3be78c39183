package player

import "context"

// Repository describes player pool lookups needed by use cases.
type Repository interface {
	ListByPosition(ctx context.Context, pos Position) ([]Player, error)
	// GetByKey resolves an exact canonical name key.
	GetByKey(ctx context.Context, key string) (Player, bool, error)
	// Search returns players whose name contains fragment, case-insensitive.
	Search(ctx context.Context, fragment string) ([]Player, error)
}
