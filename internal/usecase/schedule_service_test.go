package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/round"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/stage"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

func newScheduleFixture(stages []stage.Stage, games []game.Game) *ScheduleService {
	return NewScheduleService(
		&stubSeasonRepository{byID: map[int64]season.Season{1: {ID: 1, Name: "Кубок 2026"}}},
		&stubStageRepository{bySeason: map[int64][]stage.Stage{1: stages}},
		&stubGameRepository{bySeason: map[int64][]game.Game{1: games}},
		logging.NewNop(),
	)
}

func TestScheduleServiceListRounds(t *testing.T) {
	t.Parallel()

	stages := []stage.Stage{
		{ID: 20, SeasonID: 1, Name: "Полуфинал", SortOrder: 2},
		{ID: 10, SeasonID: 1, Name: "1/4 финала", SortOrder: 1},
		{ID: 30, SeasonID: 1, Name: "Финал", SortOrder: 3},
	}
	games := []game.Game{
		finishedAt(1, 10, 1, 2, 0),
		finishedAt(2, 10, 1, 1, 3),
		finishedAt(3, 20, 5, 1, 0),
		scheduledAt(4, 20, 5),
		scheduledAt(5, 30, 9),
	}

	svc := newScheduleFixture(stages, games)
	rounds, err := svc.ListRounds(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("ListRounds: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("got %d rounds, want 3", len(rounds))
	}

	wantKeys := []string{round.Key1of4, round.Key1of2, round.KeyFinal}
	for i, key := range wantKeys {
		if rounds[i].Key != key {
			t.Errorf("round %d key = %q, want %q", i, rounds[i].Key, key)
		}
	}
	if rounds[0].PlayedGames() != 2 || rounds[0].TotalGames() != 2 {
		t.Errorf("quarterfinal played/total = %d/%d, want 2/2", rounds[0].PlayedGames(), rounds[0].TotalGames())
	}
	if !rounds[1].IsCurrent {
		t.Errorf("semifinal should be current (first incomplete)")
	}
	if rounds[0].IsCurrent || rounds[2].IsCurrent {
		t.Errorf("only the semifinal should be current")
	}
}

func TestScheduleServiceRoundKeyFilterKeepsCurrentFlag(t *testing.T) {
	t.Parallel()

	stages := []stage.Stage{
		{ID: 10, SeasonID: 1, Name: "1/4 финала", SortOrder: 1},
		{ID: 20, SeasonID: 1, Name: "Финал", SortOrder: 2},
	}
	games := []game.Game{
		finishedAt(1, 10, 1, 2, 0),
		scheduledAt(2, 20, 9),
	}

	svc := newScheduleFixture(stages, games)
	rounds, err := svc.ListRounds(context.Background(), 1, round.KeyFinal)
	if err != nil {
		t.Fatalf("ListRounds: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("got %d rounds, want 1", len(rounds))
	}
	if rounds[0].Key != round.KeyFinal || !rounds[0].IsCurrent {
		t.Fatalf("filtered round = %+v, want current final", rounds[0])
	}
}

func TestScheduleServiceOrphanGamesBucketedAsOther(t *testing.T) {
	t.Parallel()

	stages := []stage.Stage{
		{ID: 10, SeasonID: 1, Name: "Финал", SortOrder: 1},
	}
	unknown := scheduledAt(2, 99, 3)
	noStage := scheduledAt(3, 0, 4)
	noStage.StageID = nil
	games := []game.Game{finishedAt(1, 10, 1, 1, 0), unknown, noStage}

	svc := newScheduleFixture(stages, games)
	rounds, err := svc.ListRounds(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("ListRounds: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(rounds))
	}
	other := rounds[1]
	if other.Key != round.KeyOther || other.StageID != nil {
		t.Fatalf("last round = %+v, want synthetic other round", other)
	}
	if other.TotalGames() != 2 {
		t.Fatalf("other round has %d games, want 2", other.TotalGames())
	}

	// conservation: every game lands in exactly one round
	total := 0
	for _, r := range rounds {
		total += r.TotalGames()
	}
	if total != len(games) {
		t.Fatalf("rounds carry %d games, want %d", total, len(games))
	}
}

func TestScheduleServiceEmptySeason(t *testing.T) {
	t.Parallel()

	svc := newScheduleFixture(nil, nil)
	rounds, err := svc.ListRounds(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("ListRounds: %v", err)
	}
	if len(rounds) != 0 {
		t.Fatalf("got %d rounds, want 0", len(rounds))
	}
}

func TestScheduleServiceSeasonNotFound(t *testing.T) {
	t.Parallel()

	svc := newScheduleFixture(nil, nil)
	_, err := svc.ListRounds(context.Background(), 404, "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestScheduleServiceInvalidSeasonID(t *testing.T) {
	t.Parallel()

	svc := newScheduleFixture(nil, nil)
	_, err := svc.ListRounds(context.Background(), 0, "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
