package memory

import (
	"context"
	"sync"

	"github.com/qazleague/cup-service/internal/domain/game"
)

type GameRepository struct {
	mu       sync.RWMutex
	bySeason map[int64][]game.Game
	byID     map[int64]*game.Game
}

func NewGameRepository(games []game.Game) *GameRepository {
	bySeason := make(map[int64][]game.Game)
	for _, item := range games {
		bySeason[item.SeasonID] = append(bySeason[item.SeasonID], item)
	}
	byID := make(map[int64]*game.Game, len(games))
	for seasonID := range bySeason {
		items := bySeason[seasonID]
		game.SortSchedule(items)
		for i := range items {
			byID[items[i].ID] = &items[i]
		}
	}
	return &GameRepository{bySeason: bySeason, byID: byID}
}

func (r *GameRepository) ListBySeason(_ context.Context, seasonID int64) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonID]
	out := make([]game.Game, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[gameID]
	if !ok {
		return game.Game{}, false, nil
	}
	return *item, true, nil
}

func (r *GameRepository) UpdateLiveState(_ context.Context, gameID int64, state game.LiveState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[gameID]
	if !ok {
		return nil
	}
	item.IsLive = state.IsLive
	item.HomeScore = state.HomeScore
	item.AwayScore = state.AwayScore
	item.RawStatus = state.RawStatus
	return nil
}
