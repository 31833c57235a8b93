package game

import "strings"

// Status is the consumer-facing lifecycle state of a game.
type Status string

const (
	StatusScheduled       Status = "scheduled"
	StatusLive            Status = "live"
	StatusFinished        Status = "finished"
	StatusPostponed       Status = "postponed"
	StatusCancelled       Status = "cancelled"
	StatusTechnicalDefeat Status = "technical_defeat"
)

// ComputeStatus derives the lifecycle status from the stored state, live
// flag and score presence. The legacy feed stores "created" for games that
// have not started; everything else maps onto the closed enumeration.
func (g Game) ComputeStatus() Status {
	switch normalizeRawStatus(g.RawStatus) {
	case StatusPostponed:
		return StatusPostponed
	case StatusCancelled:
		return StatusCancelled
	case StatusTechnicalDefeat:
		return StatusTechnicalDefeat
	}

	if g.IsTechnical {
		return StatusTechnicalDefeat
	}
	if g.IsLive {
		return StatusLive
	}
	if normalizeRawStatus(g.RawStatus) == StatusFinished {
		return StatusFinished
	}
	if g.HomeScore != nil && g.AwayScore != nil {
		return StatusFinished
	}

	return StatusScheduled
}

// IsFinished reports whether the game produced a final result.
func (g Game) IsFinished() bool {
	return g.ComputeStatus() == StatusFinished
}

func normalizeRawStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "finished", "ft", "aet", "pen":
		return StatusFinished
	case "live", "in_play", "ht", "1h", "2h", "et":
		return StatusLive
	case "postponed":
		return StatusPostponed
	case "cancelled", "canceled", "abandoned":
		return StatusCancelled
	case "technical_defeat", "technical-defeat":
		return StatusTechnicalDefeat
	case "", "created", "scheduled":
		return StatusScheduled
	default:
		return StatusScheduled
	}
}
