package usecase

import (
	"context"

	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/round"
	"github.com/qazleague/cup-service/internal/domain/stage"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

// buildRounds groups a season's games by stage and classifies each stage
// into a round. Stages keep their schedule order; games that reference a
// missing or unknown stage are collected into a trailing "other" round.
func buildRounds(ctx context.Context, logger *logging.Logger, stages []stage.Stage, games []game.Game) []round.Round {
	ordered := make([]stage.Stage, len(stages))
	copy(ordered, stages)
	stage.SortSchedule(ordered)

	known := make(map[int64]int, len(ordered))
	rounds := make([]round.Round, 0, len(ordered)+1)
	for i, st := range ordered {
		stageID := st.ID
		known[stageID] = i
		rounds = append(rounds, round.Round{
			Key:       round.Classify(st.ID, st.Name, st.NameKZ, st.NameEN),
			StageID:   &stageID,
			Name:      st.Name,
			NameKZ:    st.NameKZ,
			NameEN:    st.NameEN,
			SortOrder: st.SortOrder,
		})
	}

	var orphans []game.Game
	for _, g := range games {
		if g.StageID != nil {
			if i, ok := known[*g.StageID]; ok {
				rounds[i].Games = append(rounds[i].Games, g)
				continue
			}
		}
		orphans = append(orphans, g)
	}
	for i := range rounds {
		game.SortSchedule(rounds[i].Games)
	}

	if len(orphans) > 0 {
		logger.WarnContext(ctx, "schedule has games without a valid stage, bucketed as other",
			"count", len(orphans))
		game.SortSchedule(orphans)
		rounds = append(rounds, round.Round{
			Key:   round.KeyOther,
			Name:  "Other",
			Games: orphans,
		})
	}

	return rounds
}

// markCurrent applies the current-round selection to rounds in place.
func markCurrent(rounds []round.Round) {
	if i := round.SelectCurrent(rounds); i >= 0 {
		rounds[i].IsCurrent = true
	}
}
