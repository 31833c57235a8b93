package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/qazleague/cup-service/internal/domain/participant"
	"github.com/qazleague/cup-service/internal/domain/standings"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

const defaultGroupWorkers = 4

// GroupStandingsService assembles per-group tables for seasons with a
// group stage. Group tables are computed concurrently on a bounded pool;
// output order stays deterministic (groups sorted by name).
type GroupStandingsService struct {
	participantRepo participant.Repository
	calculator      standings.Calculator
	logger          *logging.Logger
	workers         int
}

func NewGroupStandingsService(participantRepo participant.Repository, calculator standings.Calculator, logger *logging.Logger) *GroupStandingsService {
	return &GroupStandingsService{
		participantRepo: participantRepo,
		calculator:      calculator,
		logger:          logger,
		workers:         defaultGroupWorkers,
	}
}

// ListGroups returns the season's group tables sorted by group name, or
// nil when no participant carries a group assignment.
func (s *GroupStandingsService) ListGroups(ctx context.Context, seasonID int64) ([]standings.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "GroupStandingsService.ListGroups")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	participants, err := s.participantRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	// Disqualification removes the team from the table, not the group
	// itself: a group whose members are all disqualified still shows up,
	// with an empty table.
	byGroup := make(map[string][]int64)
	for _, p := range participants {
		if p.GroupName == "" {
			continue
		}
		teamIDs := byGroup[p.GroupName]
		if !p.IsDisqualified {
			teamIDs = append(teamIDs, p.TeamID)
		}
		byGroup[p.GroupName] = teamIDs
	}
	if len(byGroup) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(byGroup))
	for name := range byGroup {
		names = append(names, name)
	}
	sort.Strings(names)

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("group worker pool: %w", err)
	}
	defer pool.Release()

	groups := make([]standings.Group, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		i, name := i, name
		teamIDs := byGroup[name]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if len(teamIDs) == 0 {
				groups[i] = standings.Group{Name: name, Rows: []standings.Row{}}
				return
			}
			rows, calcErr := s.calculator.Calculate(ctx, seasonID, standings.Filters{TeamIDs: teamIDs})
			if calcErr != nil {
				errs[i] = fmt.Errorf("group %s: %w", name, calcErr)
				return
			}
			groups[i] = standings.Group{Name: name, Rows: rows}
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit group %s: %w", name, submitErr)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return groups, nil
}
