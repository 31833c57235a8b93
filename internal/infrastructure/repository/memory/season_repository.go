package memory

import (
	"context"
	"sync"

	"github.com/qazleague/cup-service/internal/domain/season"
)

type SeasonRepository struct {
	mu   sync.RWMutex
	byID map[int64]season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	byID := make(map[int64]season.Season, len(seasons))
	for _, item := range seasons {
		byID[item.ID] = item
	}
	return &SeasonRepository{byID: byID}
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[seasonID]
	if !ok || item.IsHidden {
		return season.Season{}, false, nil
	}
	return item, true, nil
}
