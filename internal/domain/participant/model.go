package participant

// Participant is a team's membership in a season, carrying the group
// assignment used by group-stage standings. GroupName is empty for
// participants outside any group.
type Participant struct {
	ID             int64
	SeasonID       int64
	TeamID         int64
	TeamName       string
	TeamNameKZ     string
	TeamNameEN     string
	TeamLogoURL    string
	GroupName      string
	IsDisqualified bool
}
