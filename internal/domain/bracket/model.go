package bracket

import "github.com/qazleague/cup-service/internal/domain/game"

// Side places a bracket entry on the rendered tree.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideCenter Side = "center"
)

// Entry is one slot of a bracket round tied to a game.
type Entry struct {
	ID           int64
	Side         Side
	SortOrder    int
	IsThirdPlace bool
	Game         game.Game
}

// Round is one column of the bracket.
type Round struct {
	Key     string
	Label   string
	Entries []Entry
}

// Bracket is the full knockout tree, rounds ordered earliest first.
type Bracket struct {
	Rounds []Round
}

// StoredEntry is a curated bracket row maintained by editors. When a
// season has any visible stored rows they take precedence over the
// synthesized bracket.
type StoredEntry struct {
	ID           int64
	SeasonID     int64
	RoundName    string
	Side         Side
	SortOrder    int
	GameID       int64
	IsVisible    bool
	IsThirdPlace bool
}
