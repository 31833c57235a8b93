package postgres

import (
	"database/sql"
	"time"
)

type seasonTableModel struct {
	ID               int64          `db:"id"`
	Name             string         `db:"name"`
	NameKZ           sql.NullString `db:"name_kz"`
	NameEN           sql.NullString `db:"name_en"`
	ChampionshipName sql.NullString `db:"championship_name"`
	ChampionshipKZ   sql.NullString `db:"championship_name_kz"`
	ChampionshipEN   sql.NullString `db:"championship_name_en"`
	DateStart        time.Time      `db:"date_start"`
	DateEnd          time.Time      `db:"date_end"`
	IsHidden         bool           `db:"is_hidden"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
