package bracket

import "context"

type Repository interface {
	// ListBySeason returns stored bracket rows ordered by (round_name, sort_order).
	ListBySeason(ctx context.Context, seasonID int64) ([]StoredEntry, error)
}
