package stage

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Stage, error)
}
