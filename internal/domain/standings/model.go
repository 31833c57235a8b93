package standings

import "context"

// Row is one team's line in a league table.
type Row struct {
	Position       int
	TeamID         int64
	TeamName       string
	TeamNameKZ     string
	TeamNameEN     string
	TeamLogoURL    string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsScored    int
	GoalsConceded  int
	GoalDifference int
	Points         int
	Form           []string // last 5 results, most recent last: "W", "D", "L"
}

// Filters narrows which finished games feed the table.
type Filters struct {
	// TeamIDs, when non-empty, keeps only games where both sides are in the set.
	TeamIDs []int64
	// GroupName restricts the table to participants of one group. It is
	// resolved to a team set by the calculator; an unknown group yields
	// an empty table.
	GroupName string
	TourFrom  *int
	TourTo    *int
	HomeOnly  bool
	AwayOnly  bool
}

// Calculator computes a table from a season's finished games.
type Calculator interface {
	Calculate(ctx context.Context, seasonID int64, filters Filters) ([]Row, error)
}

// Group is one group-stage table.
type Group struct {
	Name string
	Rows []Row
}
