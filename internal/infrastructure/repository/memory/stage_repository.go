package memory

import (
	"context"
	"sync"

	"github.com/qazleague/cup-service/internal/domain/stage"
)

type StageRepository struct {
	mu       sync.RWMutex
	bySeason map[int64][]stage.Stage
}

func NewStageRepository(stages []stage.Stage) *StageRepository {
	bySeason := make(map[int64][]stage.Stage)
	for _, item := range stages {
		bySeason[item.SeasonID] = append(bySeason[item.SeasonID], item)
	}
	return &StageRepository{bySeason: bySeason}
}

func (r *StageRepository) ListBySeason(_ context.Context, seasonID int64) ([]stage.Stage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonID]
	out := make([]stage.Stage, 0, len(items))
	out = append(out, items...)
	stage.SortSchedule(out)
	return out, nil
}
