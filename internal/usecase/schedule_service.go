package usecase

import (
	"context"
	"fmt"

	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/round"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/stage"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

// ScheduleService produces a season's schedule as classified rounds.
type ScheduleService struct {
	seasonRepo season.Repository
	stageRepo  stage.Repository
	gameRepo   game.Repository
	logger     *logging.Logger
}

func NewScheduleService(seasonRepo season.Repository, stageRepo stage.Repository, gameRepo game.Repository, logger *logging.Logger) *ScheduleService {
	return &ScheduleService{
		seasonRepo: seasonRepo,
		stageRepo:  stageRepo,
		gameRepo:   gameRepo,
		logger:     logger,
	}
}

// ListRounds returns the season's rounds in schedule order with the
// current round marked. When roundKey is non-empty only matching rounds
// are returned; the current-round selection still runs over the full
// schedule first.
func (s *ScheduleService) ListRounds(ctx context.Context, seasonID int64, roundKey string) ([]round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.ListRounds")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	if _, exists, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	rounds, err := s.loadRounds(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	markCurrent(rounds)

	if roundKey == "" {
		return rounds, nil
	}
	filtered := make([]round.Round, 0, 1)
	for _, r := range rounds {
		if r.Key == roundKey {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *ScheduleService) loadRounds(ctx context.Context, seasonID int64) ([]round.Round, error) {
	stages, err := s.stageRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return buildRounds(ctx, s.logger, stages, games), nil
}
