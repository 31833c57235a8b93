package httpapi

import (
	"time"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/round"
	"github.com/qazleague/cup-service/internal/domain/standings"
	"github.com/qazleague/cup-service/internal/platform/i18n"
	"github.com/qazleague/cup-service/internal/usecase"
)

type teamDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type gameDTO struct {
	ID               int64    `json:"id"`
	Date             string   `json:"date"`
	Time             string   `json:"time,omitempty"`
	Status           string   `json:"status"`
	IsLive           bool     `json:"is_live"`
	HomeTeam         *teamDTO `json:"home_team"`
	AwayTeam         *teamDTO `json:"away_team"`
	HomeScore        *int     `json:"home_score"`
	AwayScore        *int     `json:"away_score"`
	HomePenaltyScore *int     `json:"home_penalty_score,omitempty"`
	AwayPenaltyScore *int     `json:"away_penalty_score,omitempty"`
	Tour             *int     `json:"tour,omitempty"`
}

type roundDTO struct {
	StageID     *int64    `json:"stage_id"`
	RoundName   string    `json:"round_name"`
	RoundKey    string    `json:"round_key"`
	IsCurrent   bool      `json:"is_current"`
	TotalGames  int       `json:"total_games"`
	PlayedGames int       `json:"played_games"`
	Games       []gameDTO `json:"games"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	TeamLogo       string `json:"team_logo,omitempty"`
	GamesPlayed    int    `json:"games_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsScored    int    `json:"goals_scored"`
	GoalsConceded  int    `json:"goals_conceded"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}

type groupDTO struct {
	GroupName string           `json:"group_name"`
	Standings []standingRowDTO `json:"standings"`
}

type bracketEntryDTO struct {
	ID           int64   `json:"id"`
	Side         string  `json:"side"`
	SortOrder    int     `json:"sort_order"`
	IsThirdPlace bool    `json:"is_third_place"`
	Game         gameDTO `json:"game"`
}

type bracketRoundDTO struct {
	RoundName string            `json:"round_name"`
	Label     string            `json:"label"`
	Entries   []bracketEntryDTO `json:"entries"`
}

type bracketDTO struct {
	SeasonID int64             `json:"season_id"`
	Rounds   []bracketRoundDTO `json:"rounds"`
}

type overviewDTO struct {
	SeasonID         int64       `json:"season_id"`
	SeasonName       string      `json:"season_name"`
	ChampionshipName string      `json:"championship_name,omitempty"`
	CurrentRound     *roundDTO   `json:"current_round"`
	Rounds           []roundDTO  `json:"rounds"`
	Groups           []groupDTO  `json:"groups"`
	Bracket          *bracketDTO `json:"bracket"`
	RecentResults    []gameDTO   `json:"recent_results"`
	UpcomingGames    []gameDTO   `json:"upcoming_games"`
}

type scheduleDTO struct {
	SeasonID   int64      `json:"season_id"`
	TotalGames int        `json:"total_games"`
	Rounds     []roundDTO `json:"rounds"`
}

type tableDTO struct {
	SeasonID int64            `json:"season_id"`
	Rows     []standingRowDTO `json:"rows"`
}

type syncLiveResultDTO struct {
	SeasonID     int64 `json:"season_id"`
	UpdatedGames int   `json:"updated_games"`
}

func mapTeamDTO(ref *game.TeamRef, lang string) *teamDTO {
	if ref == nil {
		return nil
	}
	return &teamDTO{
		ID:      ref.ID,
		Name:    i18n.Field(ref.Name, ref.NameKZ, ref.NameEN, lang),
		LogoURL: ref.LogoURL,
	}
}

func mapGameDTO(g game.Game, lang string) gameDTO {
	return gameDTO{
		ID:               g.ID,
		Date:             g.Date.Format(time.DateOnly),
		Time:             g.Time,
		Status:           string(g.ComputeStatus()),
		IsLive:           g.ComputeStatus() == game.StatusLive,
		HomeTeam:         mapTeamDTO(g.HomeTeam, lang),
		AwayTeam:         mapTeamDTO(g.AwayTeam, lang),
		HomeScore:        g.HomeScore,
		AwayScore:        g.AwayScore,
		HomePenaltyScore: g.HomePenaltyScore,
		AwayPenaltyScore: g.AwayPenaltyScore,
		Tour:             g.Tour,
	}
}

func mapRoundDTO(r round.Round, lang string, includeGames bool) roundDTO {
	dto := roundDTO{
		StageID:     r.StageID,
		RoundName:   i18n.Field(r.Name, r.NameKZ, r.NameEN, lang),
		RoundKey:    r.Key,
		IsCurrent:   r.IsCurrent,
		TotalGames:  r.TotalGames(),
		PlayedGames: r.PlayedGames(),
		Games:       []gameDTO{},
	}
	if includeGames {
		for _, g := range r.Games {
			dto.Games = append(dto.Games, mapGameDTO(g, lang))
		}
	}
	return dto
}

func mapStandingRowDTO(row standings.Row, lang string) standingRowDTO {
	form := ""
	for _, f := range row.Form {
		form += f
	}
	return standingRowDTO{
		Position:       row.Position,
		TeamID:         row.TeamID,
		TeamName:       i18n.Field(row.TeamName, row.TeamNameKZ, row.TeamNameEN, lang),
		TeamLogo:       row.TeamLogoURL,
		GamesPlayed:    row.Played,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalsScored:    row.GoalsScored,
		GoalsConceded:  row.GoalsConceded,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		Form:           form,
	}
}

func mapGroupDTOs(groups []standings.Group, lang string) []groupDTO {
	if groups == nil {
		return nil
	}
	out := make([]groupDTO, 0, len(groups))
	for _, g := range groups {
		rows := make([]standingRowDTO, 0, len(g.Rows))
		for _, row := range g.Rows {
			rows = append(rows, mapStandingRowDTO(row, lang))
		}
		out = append(out, groupDTO{GroupName: g.Name, Standings: rows})
	}
	return out
}

func mapBracketDTO(seasonID int64, b *bracket.Bracket, lang string) *bracketDTO {
	if b == nil {
		return nil
	}
	dto := &bracketDTO{SeasonID: seasonID, Rounds: make([]bracketRoundDTO, 0, len(b.Rounds))}
	for _, r := range b.Rounds {
		entries := make([]bracketEntryDTO, 0, len(r.Entries))
		for _, e := range r.Entries {
			entries = append(entries, bracketEntryDTO{
				ID:           e.ID,
				Side:         string(e.Side),
				SortOrder:    e.SortOrder,
				IsThirdPlace: e.IsThirdPlace,
				Game:         mapGameDTO(e.Game, lang),
			})
		}
		dto.Rounds = append(dto.Rounds, bracketRoundDTO{
			RoundName: r.Key,
			Label:     r.Label,
			Entries:   entries,
		})
	}
	return dto
}

func mapGameDTOs(games []game.Game, lang string) []gameDTO {
	out := make([]gameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, mapGameDTO(g, lang))
	}
	return out
}

func mapOverviewDTO(ov usecase.Overview, lang string) overviewDTO {
	dto := overviewDTO{
		SeasonID:         ov.Season.ID,
		SeasonName:       i18n.Field(ov.Season.Name, ov.Season.NameKZ, ov.Season.NameEN, lang),
		ChampionshipName: i18n.Field(ov.Season.ChampionshipName, ov.Season.ChampionshipNameKZ, ov.Season.ChampionshipNameEN, lang),
		Groups:           mapGroupDTOs(ov.Groups, lang),
		Bracket:          mapBracketDTO(ov.Season.ID, ov.Bracket, lang),
		RecentResults:    mapGameDTOs(ov.Recent, lang),
		UpcomingGames:    mapGameDTOs(ov.Upcoming, lang),
	}
	if ov.CurrentRound != nil {
		cur := mapRoundDTO(*ov.CurrentRound, lang, true)
		dto.CurrentRound = &cur
	}
	dto.Rounds = make([]roundDTO, 0, len(ov.Rounds))
	for _, r := range ov.Rounds {
		dto.Rounds = append(dto.Rounds, mapRoundDTO(r, lang, false))
	}
	return dto
}
