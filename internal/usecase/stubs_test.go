package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/participant"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/stage"
)

type stubSeasonRepository struct {
	byID map[int64]season.Season
	err  error
}

func (s *stubSeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	if s.err != nil {
		return season.Season{}, false, s.err
	}
	sn, ok := s.byID[seasonID]
	return sn, ok, nil
}

type stubStageRepository struct {
	bySeason map[int64][]stage.Stage
	err      error
}

func (s *stubStageRepository) ListBySeason(_ context.Context, seasonID int64) ([]stage.Stage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bySeason[seasonID], nil
}

type stubGameRepository struct {
	mu       sync.Mutex
	bySeason map[int64][]game.Game
	updates  map[int64]game.LiveState
	err      error
}

func (s *stubGameRepository) ListBySeason(_ context.Context, seasonID int64) ([]game.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bySeason[seasonID], nil
}

func (s *stubGameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	if s.err != nil {
		return game.Game{}, false, s.err
	}
	for _, games := range s.bySeason {
		for _, g := range games {
			if g.ID == gameID {
				return g, true, nil
			}
		}
	}
	return game.Game{}, false, nil
}

func (s *stubGameRepository) UpdateLiveState(_ context.Context, gameID int64, state game.LiveState) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updates == nil {
		s.updates = make(map[int64]game.LiveState)
	}
	s.updates[gameID] = state
	return nil
}

type stubParticipantRepository struct {
	bySeason map[int64][]participant.Participant
	err      error
}

func (s *stubParticipantRepository) ListBySeason(_ context.Context, seasonID int64) ([]participant.Participant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bySeason[seasonID], nil
}

type stubBracketRepository struct {
	bySeason map[int64][]bracket.StoredEntry
	err      error
}

func (s *stubBracketRepository) ListBySeason(_ context.Context, seasonID int64) ([]bracket.StoredEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bySeason[seasonID], nil
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func finishedAt(id, stageID int64, d int, home, away int) game.Game {
	return game.Game{
		ID:        id,
		SeasonID:  1,
		StageID:   int64Ptr(stageID),
		Date:      day(d),
		HomeScore: intPtr(home),
		AwayScore: intPtr(away),
		RawStatus: "finished",
	}
}

func scheduledAt(id, stageID int64, d int) game.Game {
	return game.Game{
		ID:        id,
		SeasonID:  1,
		StageID:   int64Ptr(stageID),
		Date:      day(d),
		RawStatus: "created",
	}
}
