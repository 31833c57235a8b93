package game

import (
	"sort"
	"time"
)

// TeamRef is the denormalized team info a game payload carries.
type TeamRef struct {
	ID      int64
	Name    string
	NameKZ  string
	NameEN  string
	LogoURL string
}

// Game is one scheduled match of a season. StageID may be nil or point at
// a stage the season no longer knows about (an orphan game).
type Game struct {
	ID               int64
	SeasonID         int64
	StageID          *int64
	Tour             *int
	Date             time.Time
	Time             string // "HH:MM", empty when unknown
	HomeTeam         *TeamRef
	AwayTeam         *TeamRef
	HomeScore        *int
	AwayScore        *int
	HomePenaltyScore *int
	AwayPenaltyScore *int
	RawStatus        string // as stored upstream; see ComputeStatus
	IsLive           bool
	IsTechnical      bool
}

// SortSchedule orders games by (date, time, id) ascending, the order the
// round and bracket builders rely on.
func SortSchedule(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].Date.Equal(games[j].Date) {
			return games[i].Date.Before(games[j].Date)
		}
		if games[i].Time != games[j].Time {
			return games[i].Time < games[j].Time
		}
		return games[i].ID < games[j].ID
	})
}
