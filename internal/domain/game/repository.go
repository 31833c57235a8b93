package game

import "context"

// LiveState is the mutable slice of a game a live feed may change.
type LiveState struct {
	IsLive    bool
	HomeScore *int
	AwayScore *int
	RawStatus string
}

// Repository exposes game reads keyed by season, plus the single write
// the live sync job needs.
type Repository interface {
	// ListBySeason returns all games of a season ordered by (date, time, id).
	ListBySeason(ctx context.Context, seasonID int64) ([]Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	UpdateLiveState(ctx context.Context, gameID int64, state LiveState) error
}
