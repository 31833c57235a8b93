package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/participant"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/standings"
)

// TableService computes league tables dynamically from finished games.
// It implements standings.Calculator.
type TableService struct {
	seasonRepo      season.Repository
	gameRepo        game.Repository
	participantRepo participant.Repository
}

func NewTableService(seasonRepo season.Repository, gameRepo game.Repository, participantRepo participant.Repository) *TableService {
	return &TableService{seasonRepo: seasonRepo, gameRepo: gameRepo, participantRepo: participantRepo}
}

func (s *TableService) Calculate(ctx context.Context, seasonID int64, filters standings.Filters) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "TableService.Calculate")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if filters.HomeOnly && filters.AwayOnly {
		return nil, fmt.Errorf("%w: home and away filters are mutually exclusive", ErrInvalidInput)
	}

	if _, exists, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	if filters.GroupName != "" {
		teamIDs, err := s.resolveGroupTeams(ctx, seasonID, filters)
		if err != nil {
			return nil, err
		}
		if len(teamIDs) == 0 {
			return []standings.Row{}, nil
		}
		filters.TeamIDs = teamIDs
	}

	games, err := s.gameRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	games = filterTableGames(games, filters)
	sortForForm(games)

	acc := make(map[int64]*standings.Row)
	order := make([]int64, 0)
	record := func(team *game.TeamRef, scored, conceded int) {
		if team == nil {
			return
		}
		row, ok := acc[team.ID]
		if !ok {
			row = &standings.Row{
				TeamID:      team.ID,
				TeamName:    team.Name,
				TeamNameKZ:  team.NameKZ,
				TeamNameEN:  team.NameEN,
				TeamLogoURL: team.LogoURL,
			}
			acc[team.ID] = row
			order = append(order, team.ID)
		}
		row.Played++
		row.GoalsScored += scored
		row.GoalsConceded += conceded
		switch {
		case scored > conceded:
			row.Wins++
			row.Points += 3
			row.Form = append(row.Form, "W")
		case scored < conceded:
			row.Losses++
			row.Form = append(row.Form, "L")
		default:
			row.Draws++
			row.Points++
			row.Form = append(row.Form, "D")
		}
	}

	for _, g := range games {
		if !filters.AwayOnly {
			record(g.HomeTeam, *g.HomeScore, *g.AwayScore)
		}
		if !filters.HomeOnly {
			record(g.AwayTeam, *g.AwayScore, *g.HomeScore)
		}
	}

	rows := make([]standings.Row, 0, len(order))
	for _, id := range order {
		row := acc[id]
		row.GoalDifference = row.GoalsScored - row.GoalsConceded
		if len(row.Form) > 5 {
			row.Form = row.Form[len(row.Form)-5:]
		}
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsScored > rows[j].GoalsScored
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows, nil
}

// resolveGroupTeams maps a group-name filter to the IDs of the teams
// assigned to that group. Matching is case-insensitive; disqualified
// participants are skipped. An explicit TeamIDs filter narrows the set
// further.
func (s *TableService) resolveGroupTeams(ctx context.Context, seasonID int64, filters standings.Filters) ([]int64, error) {
	participants, err := s.participantRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	var allowed map[int64]struct{}
	if len(filters.TeamIDs) > 0 {
		allowed = make(map[int64]struct{}, len(filters.TeamIDs))
		for _, id := range filters.TeamIDs {
			allowed[id] = struct{}{}
		}
	}

	want := strings.TrimSpace(filters.GroupName)
	teamIDs := make([]int64, 0)
	for _, p := range participants {
		if p.IsDisqualified || !strings.EqualFold(p.GroupName, want) {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[p.TeamID]; !ok {
				continue
			}
		}
		teamIDs = append(teamIDs, p.TeamID)
	}
	return teamIDs, nil
}

func filterTableGames(games []game.Game, filters standings.Filters) []game.Game {
	var teamSet map[int64]struct{}
	if len(filters.TeamIDs) > 0 {
		teamSet = make(map[int64]struct{}, len(filters.TeamIDs))
		for _, id := range filters.TeamIDs {
			teamSet[id] = struct{}{}
		}
	}

	out := games[:0:0]
	for _, g := range games {
		if g.HomeScore == nil || g.AwayScore == nil {
			continue
		}
		if filters.TourFrom != nil && (g.Tour == nil || *g.Tour < *filters.TourFrom) {
			continue
		}
		if filters.TourTo != nil && (g.Tour == nil || *g.Tour > *filters.TourTo) {
			continue
		}
		if teamSet != nil {
			if g.HomeTeam == nil || g.AwayTeam == nil {
				continue
			}
			if _, ok := teamSet[g.HomeTeam.ID]; !ok {
				continue
			}
			if _, ok := teamSet[g.AwayTeam.ID]; !ok {
				continue
			}
		}
		out = append(out, g)
	}
	return out
}

// sortForForm orders games by (tour, date, time, id) so the form string
// reflects chronology.
func sortForForm(games []game.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		ti, tj := 0, 0
		if games[i].Tour != nil {
			ti = *games[i].Tour
		}
		if games[j].Tour != nil {
			tj = *games[j].Tour
		}
		if ti != tj {
			return ti < tj
		}
		if !games[i].Date.Equal(games[j].Date) {
			return games[i].Date.Before(games[j].Date)
		}
		if games[i].Time != games[j].Time {
			return games[i].Time < games[j].Time
		}
		return games[i].ID < games[j].ID
	})
}
