package participant

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]Participant, error)
}
