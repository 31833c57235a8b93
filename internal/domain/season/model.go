package season

import "time"

// Season is one competition edition (a league year or a cup run).
type Season struct {
	ID                 int64
	Name               string
	NameKZ             string
	NameEN             string
	ChampionshipName   string
	ChampionshipNameKZ string
	ChampionshipNameEN string
	DateStart          time.Time
	DateEnd            time.Time
	IsHidden           bool
}
