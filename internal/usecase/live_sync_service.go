package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

const liveSyncWorkers = 4

// ExternalLiveGame is the live feed's view of one game in play.
type ExternalLiveGame struct {
	GameID    int64
	HomeScore *int
	AwayScore *int
	Status    string
	IsLive    bool
}

// LiveFeed pulls in-play game states from the upstream provider.
type LiveFeed interface {
	FetchLiveGames(ctx context.Context, seasonID int64) ([]ExternalLiveGame, error)
}

// Broadcaster pushes a game update to connected subscribers.
type Broadcaster interface {
	BroadcastGameUpdate(g game.Game)
}

// LiveSyncService reconciles stored games against the live feed and
// fans updates out to websocket subscribers. Triggered by the internal
// sync job endpoint.
type LiveSyncService struct {
	gameRepo    game.Repository
	feed        LiveFeed
	broadcaster Broadcaster
	logger      *logging.Logger
}

func NewLiveSyncService(gameRepo game.Repository, feed LiveFeed, broadcaster Broadcaster, logger *logging.Logger) *LiveSyncService {
	return &LiveSyncService{
		gameRepo:    gameRepo,
		feed:        feed,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// SyncSeason applies the feed's live states to the season's games and
// returns how many games changed. A feed outage is a dependency error;
// per-game persistence failures abort the sync.
func (s *LiveSyncService) SyncSeason(ctx context.Context, seasonID int64) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "LiveSyncService.SyncSeason")
	defer span.End()

	if seasonID <= 0 {
		return 0, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	feedGames, err := s.feed.FetchLiveGames(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("%w: live feed: %v", ErrDependencyUnavailable, err)
	}
	if len(feedGames) == 0 {
		return 0, nil
	}

	var updated atomic.Int64
	p := pool.New().WithErrors().WithMaxGoroutines(liveSyncWorkers).WithContext(ctx)
	for _, fg := range feedGames {
		fg := fg
		p.Go(func(ctx context.Context) error {
			changed, err := s.applyLiveState(ctx, fg)
			if err != nil {
				return err
			}
			if changed {
				updated.Add(1)
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return int(updated.Load()), err
	}
	return int(updated.Load()), nil
}

func (s *LiveSyncService) applyLiveState(ctx context.Context, fg ExternalLiveGame) (bool, error) {
	stored, exists, err := s.gameRepo.GetByID(ctx, fg.GameID)
	if err != nil {
		return false, fmt.Errorf("get game %d: %w", fg.GameID, err)
	}
	if !exists {
		s.logger.WarnContext(ctx, "live feed references unknown game, skipped", "game_id", fg.GameID)
		return false, nil
	}

	state := game.LiveState{
		IsLive:    fg.IsLive,
		HomeScore: fg.HomeScore,
		AwayScore: fg.AwayScore,
		RawStatus: fg.Status,
	}
	if !liveStateChanged(stored, state) {
		return false, nil
	}

	if err := s.gameRepo.UpdateLiveState(ctx, fg.GameID, state); err != nil {
		return false, fmt.Errorf("update game %d: %w", fg.GameID, err)
	}

	stored.IsLive = state.IsLive
	stored.HomeScore = state.HomeScore
	stored.AwayScore = state.AwayScore
	stored.RawStatus = state.RawStatus
	if s.broadcaster != nil {
		s.broadcaster.BroadcastGameUpdate(stored)
	}
	return true, nil
}

func liveStateChanged(stored game.Game, state game.LiveState) bool {
	if stored.IsLive != state.IsLive || stored.RawStatus != state.RawStatus {
		return true
	}
	return !intPtrEqual(stored.HomeScore, state.HomeScore) || !intPtrEqual(stored.AwayScore, state.AwayScore)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
