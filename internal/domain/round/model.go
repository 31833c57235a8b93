package round

import (
	"github.com/qazleague/cup-service/internal/domain/game"
)

// Round is a classified slice of a season's schedule: all games of one
// stage under a stable round key. StageID is nil for the synthetic
// "other" round that collects orphan games.
type Round struct {
	Key       string
	StageID   *int64
	Name      string
	NameKZ    string
	NameEN    string
	SortOrder int
	Games     []game.Game
	IsCurrent bool
}

// TotalGames is the number of games in the round.
func (r Round) TotalGames() int { return len(r.Games) }

// PlayedGames counts the round's finished games.
func (r Round) PlayedGames() int {
	n := 0
	for _, g := range r.Games {
		if g.IsFinished() {
			n++
		}
	}
	return n
}

// HasLiveGame reports whether any game of the round is in play.
func (r Round) HasLiveGame() bool {
	for _, g := range r.Games {
		if g.ComputeStatus() == game.StatusLive {
			return true
		}
	}
	return false
}

// SelectCurrent picks the round a viewer most likely wants opened and
// returns its index, or -1 when no round qualifies. Preference order:
// a round with a live game, then the first round not yet fully played,
// then the last round that has games at all.
func SelectCurrent(rounds []Round) int {
	for i, r := range rounds {
		if r.HasLiveGame() {
			return i
		}
	}
	for i, r := range rounds {
		if r.TotalGames() > 0 && r.PlayedGames() < r.TotalGames() {
			return i
		}
	}
	for i := len(rounds) - 1; i >= 0; i-- {
		if rounds[i].TotalGames() > 0 {
			return i
		}
	}
	return -1
}
