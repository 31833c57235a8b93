package postgres

import "database/sql"

type participantTableModel struct {
	ID             int64          `db:"id"`
	SeasonID       int64          `db:"season_id"`
	TeamID         int64          `db:"team_id"`
	GroupName      sql.NullString `db:"group_name"`
	IsDisqualified bool           `db:"is_disqualified"`
}
