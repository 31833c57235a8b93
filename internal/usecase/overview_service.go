package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/round"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/stage"
	"github.com/qazleague/cup-service/internal/domain/standings"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

const (
	defaultRecentLimit   = 5
	defaultUpcomingLimit = 5
	maxOverviewLimit     = 20
)

// Overview is the aggregated season view: current round, navigation
// rounds, group tables, bracket and the recent/upcoming game strips.
type Overview struct {
	Season       season.Season
	Rounds       []round.Round // navigation projection, games stripped
	CurrentRound *round.Round  // carries its games
	Groups       []standings.Group
	Bracket      *bracket.Bracket
	Recent       []game.Game
	Upcoming     []game.Game
}

// OverviewService composes the season overview. Only the season lookup is
// a hard failure; every other section degrades to empty.
type OverviewService struct {
	seasonRepo season.Repository
	stageRepo  stage.Repository
	gameRepo   game.Repository
	groups     *GroupStandingsService
	brackets   *BracketService
	logger     *logging.Logger
}

func NewOverviewService(
	seasonRepo season.Repository,
	stageRepo stage.Repository,
	gameRepo game.Repository,
	groups *GroupStandingsService,
	brackets *BracketService,
	logger *logging.Logger,
) *OverviewService {
	return &OverviewService{
		seasonRepo: seasonRepo,
		stageRepo:  stageRepo,
		gameRepo:   gameRepo,
		groups:     groups,
		brackets:   brackets,
		logger:     logger,
	}
}

func (s *OverviewService) Get(ctx context.Context, seasonID int64, recentLimit, upcomingLimit int) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "OverviewService.Get")
	defer span.End()

	if seasonID <= 0 {
		return Overview{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	recentLimit = clampLimit(recentLimit, defaultRecentLimit)
	upcomingLimit = clampLimit(upcomingLimit, defaultUpcomingLimit)

	sn, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return Overview{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return Overview{}, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	stages, err := s.stageRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return Overview{}, fmt.Errorf("list stages: %w", err)
	}
	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return Overview{}, fmt.Errorf("list games: %w", err)
	}

	rounds := buildRounds(ctx, s.logger, stages, games)
	markCurrent(rounds)

	out := Overview{Season: sn}
	for _, r := range rounds {
		if r.IsCurrent {
			cur := r
			out.CurrentRound = &cur
		}
		nav := r
		nav.Games = nil
		out.Rounds = append(out.Rounds, nav)
	}

	out.Recent, out.Upcoming = splitRecentUpcoming(games, recentLimit, upcomingLimit)

	out.Groups, err = s.groups.ListGroups(ctx, seasonID)
	if err != nil {
		return Overview{}, err
	}

	out.Bracket, err = s.brackets.Resolve(ctx, seasonID, rounds)
	if err != nil {
		return Overview{}, err
	}

	return out, nil
}

// splitRecentUpcoming builds the two game strips: the latest finished
// games newest first, and the upcoming strip with every live game ahead
// of the next scheduled ones.
func splitRecentUpcoming(games []game.Game, recentLimit, upcomingLimit int) (recent, upcoming []game.Game) {
	var finished, scheduled, live []game.Game
	for _, g := range games {
		switch g.ComputeStatus() {
		case game.StatusFinished:
			finished = append(finished, g)
		case game.StatusScheduled:
			scheduled = append(scheduled, g)
		case game.StatusLive:
			live = append(live, g)
		}
	}

	sort.SliceStable(finished, func(i, j int) bool {
		if !finished[i].Date.Equal(finished[j].Date) {
			return finished[i].Date.After(finished[j].Date)
		}
		if finished[i].Time != finished[j].Time {
			return finished[i].Time > finished[j].Time
		}
		return finished[i].ID > finished[j].ID
	})
	if len(finished) > recentLimit {
		finished = finished[:recentLimit]
	}

	game.SortSchedule(scheduled)
	if len(scheduled) > upcomingLimit {
		scheduled = scheduled[:upcomingLimit]
	}
	game.SortSchedule(live)

	upcoming = make([]game.Game, 0, len(live)+len(scheduled))
	upcoming = append(upcoming, live...)
	upcoming = append(upcoming, scheduled...)
	return finished, upcoming
}

func clampLimit(v, def int) int {
	if v <= 0 {
		return def
	}
	if v > maxOverviewLimit {
		return maxOverviewLimit
	}
	return v
}
