package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/qazleague/cup-service/internal/domain/bracket"
)

type BracketRepository struct {
	mu       sync.RWMutex
	bySeason map[int64][]bracket.StoredEntry
}

func NewBracketRepository(entries []bracket.StoredEntry) *BracketRepository {
	bySeason := make(map[int64][]bracket.StoredEntry)
	for _, item := range entries {
		bySeason[item.SeasonID] = append(bySeason[item.SeasonID], item)
	}
	return &BracketRepository{bySeason: bySeason}
}

func (r *BracketRepository) ListBySeason(_ context.Context, seasonID int64) ([]bracket.StoredEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonID]
	out := make([]bracket.StoredEntry, 0, len(items))
	out = append(out, items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RoundName != out[j].RoundName {
			return out[i].RoundName < out[j].RoundName
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}
