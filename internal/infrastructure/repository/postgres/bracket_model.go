package postgres

type bracketTableModel struct {
	ID           int64  `db:"id"`
	SeasonID     int64  `db:"season_id"`
	RoundName    string `db:"round_name"`
	Side         string `db:"side"`
	SortOrder    int    `db:"sort_order"`
	GameID       int64  `db:"game_id"`
	IsVisible    bool   `db:"is_visible"`
	IsThirdPlace bool   `db:"is_third_place"`
}
