package memory

import (
	"context"
	"sync"

	"github.com/qazleague/cup-service/internal/domain/participant"
)

type ParticipantRepository struct {
	mu       sync.RWMutex
	bySeason map[int64][]participant.Participant
}

func NewParticipantRepository(participants []participant.Participant) *ParticipantRepository {
	bySeason := make(map[int64][]participant.Participant)
	for _, item := range participants {
		bySeason[item.SeasonID] = append(bySeason[item.SeasonID], item)
	}
	return &ParticipantRepository{bySeason: bySeason}
}

func (r *ParticipantRepository) ListBySeason(_ context.Context, seasonID int64) ([]participant.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonID]
	out := make([]participant.Participant, 0, len(items))
	out = append(out, items...)
	return out, nil
}
