package postgres

import (
	"database/sql"
	"time"

	"github.com/qazleague/cup-service/internal/domain/game"
)

type gameTableModel struct {
	ID               int64          `db:"id"`
	SeasonID         int64          `db:"season_id"`
	StageID          sql.NullInt64  `db:"stage_id"`
	Tour             sql.NullInt64  `db:"tour"`
	Date             time.Time      `db:"date"`
	Time             sql.NullString `db:"time"`
	HomeTeamID       sql.NullInt64  `db:"home_team_id"`
	AwayTeamID       sql.NullInt64  `db:"away_team_id"`
	HomeScore        sql.NullInt64  `db:"home_score"`
	AwayScore        sql.NullInt64  `db:"away_score"`
	HomePenaltyScore sql.NullInt64  `db:"home_penalty_score"`
	AwayPenaltyScore sql.NullInt64  `db:"away_penalty_score"`
	Status           string         `db:"status"`
	IsLive           bool           `db:"is_live"`
	IsTechnical      bool           `db:"is_technical"`
}

func (m gameTableModel) toDomain(teams map[int64]game.TeamRef) game.Game {
	g := game.Game{
		ID:               m.ID,
		SeasonID:         m.SeasonID,
		StageID:          nullInt64Ptr(m.StageID),
		Tour:             nullIntPtr(m.Tour),
		Date:             m.Date,
		Time:             nullString(m.Time),
		HomeScore:        nullIntPtr(m.HomeScore),
		AwayScore:        nullIntPtr(m.AwayScore),
		HomePenaltyScore: nullIntPtr(m.HomePenaltyScore),
		AwayPenaltyScore: nullIntPtr(m.AwayPenaltyScore),
		RawStatus:        m.Status,
		IsLive:           m.IsLive,
		IsTechnical:      m.IsTechnical,
	}
	if m.HomeTeamID.Valid {
		if ref, ok := teams[m.HomeTeamID.Int64]; ok {
			refCopy := ref
			g.HomeTeam = &refCopy
		}
	}
	if m.AwayTeamID.Valid {
		if ref, ok := teams[m.AwayTeamID.Int64]; ok {
			refCopy := ref
			g.AwayTeam = &refCopy
		}
	}
	return g
}

func collectTeamIDs(rows []gameTableModel) []int64 {
	ids := make([]int64, 0, len(rows)*2)
	for _, row := range rows {
		if row.HomeTeamID.Valid {
			ids = append(ids, row.HomeTeamID.Int64)
		}
		if row.AwayTeamID.Valid {
			ids = append(ids, row.AwayTeamID.Int64)
		}
	}
	return ids
}
