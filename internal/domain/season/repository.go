package season

import "context"

// Repository exposes season lookups. Hidden seasons are never returned.
type Repository interface {
	GetByID(ctx context.Context, seasonID int64) (Season, bool, error)
}
