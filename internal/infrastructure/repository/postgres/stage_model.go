package postgres

import "database/sql"

type stageTableModel struct {
	ID          int64          `db:"id"`
	SeasonID    int64          `db:"season_id"`
	Name        string         `db:"name"`
	NameKZ      sql.NullString `db:"name_kz"`
	NameEN      sql.NullString `db:"name_en"`
	StageNumber sql.NullInt64  `db:"stage_number"`
	SortOrder   int            `db:"sort_order"`
}
