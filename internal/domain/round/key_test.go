package round

import (
	"testing"

	"github.com/qazleague/cup-service/internal/domain/game"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		nameKZ string
		nameEN string
		want   string
	}{
		{name: "1/32 финала", want: Key1of32},
		{name: "1/16 финала", want: Key1of16},
		{name: "1/8 финала", want: Key1of8},
		{name: "1 / 4 финала", want: Key1of4},
		{name: "1/2 финала", want: Key1of2},
		{name: "Полуфинал", want: Key1of2},
		{name: "Четвертьфинал", want: Key1of4},
		{nameKZ: "Ширек финал", want: Key1of4},
		{nameKZ: "Жартылай финал", want: Key1of2},
		{nameEN: "Quarter-final", want: Key1of4},
		{nameEN: "Semi-final", want: Key1of2},
		{nameEN: "Round of 16", want: Key1of8},
		{nameEN: "Round of 32", want: Key1of16},
		{nameEN: "Round of 64", want: Key1of32},
		{name: "Финал", want: KeyFinal},
		{name: "финала", want: KeyFinal},
		{nameEN: "Final", want: KeyFinal},
		{nameEN: "Grand Final", want: KeyFinal},
		{name: "За 3-е место", want: Key3rdPlace},
		{name: "Матч за 3 место", want: Key3rdPlace},
		{nameEN: "3rd place match", want: Key3rdPlace},
		{nameKZ: "Үшінші орын", want: Key3rdPlace},
		{name: "Тур 5", want: "group_5"},
		{name: "тур12", want: "group_12"},
		{nameEN: "Round 3", want: "group_3"},
		{name: "Группа A", want: "group_a"},
		{nameEN: "Group B", want: "group_b"},
		{nameKZ: "Топ А", want: "group_а"},
		{name: "Плей-офф-X", want: "x"},
	}

	for _, tc := range cases {
		got := Classify(7, tc.name, tc.nameKZ, tc.nameEN)
		if got != tc.want {
			t.Errorf("Classify(%q, %q, %q) = %q, want %q", tc.name, tc.nameKZ, tc.nameEN, got, tc.want)
		}
	}
}

func TestClassifyFallbackUsesStageID(t *testing.T) {
	t.Parallel()

	if got := Classify(42, "", "", ""); got != "stage_42" {
		t.Fatalf("Classify on empty names = %q, want stage_42", got)
	}
	if got := Classify(42, "---", "", ""); got != "stage_42" {
		t.Fatalf("Classify on punctuation-only name = %q, want stage_42", got)
	}
	// only the primary name is slugged: a cyrillic-only primary name slugs
	// to nothing even when a later language would produce a slug
	if got := Classify(42, "Стыковые матчи", "", "Promotion games"); got != "stage_42" {
		t.Fatalf("Classify with unsluggable primary name = %q, want stage_42", got)
	}
}

func TestClassifySemifinalIsNotFinal(t *testing.T) {
	t.Parallel()

	// "полуфинал" ends in "финал"; the final rule must not claim it.
	if got := Classify(1, "Полуфинал", "", ""); got != Key1of2 {
		t.Fatalf("Classify(Полуфинал) = %q, want %q", got, Key1of2)
	}
	if got := Classify(1, "", "", "Semifinal"); got != Key1of2 {
		t.Fatalf("Classify(Semifinal) = %q, want %q", got, Key1of2)
	}
}

func finishedGame(id int64) game.Game {
	h, a := 1, 0
	return game.Game{ID: id, HomeScore: &h, AwayScore: &a, RawStatus: "finished"}
}

func scheduledGame(id int64) game.Game {
	return game.Game{ID: id, RawStatus: "created"}
}

func liveGame(id int64) game.Game {
	h, a := 0, 0
	return game.Game{ID: id, HomeScore: &h, AwayScore: &a, IsLive: true}
}

func TestSelectCurrentPrefersLive(t *testing.T) {
	t.Parallel()

	rounds := []Round{
		{Key: Key1of4, Games: []game.Game{finishedGame(1), finishedGame(2)}},
		{Key: Key1of2, Games: []game.Game{scheduledGame(3)}},
		{Key: KeyFinal, Games: []game.Game{liveGame(4)}},
	}
	if got := SelectCurrent(rounds); got != 2 {
		t.Fatalf("SelectCurrent = %d, want 2 (live round)", got)
	}
}

func TestSelectCurrentFirstIncomplete(t *testing.T) {
	t.Parallel()

	rounds := []Round{
		{Key: Key1of4, Games: []game.Game{finishedGame(1), finishedGame(2)}},
		{Key: Key1of2, Games: []game.Game{finishedGame(3), scheduledGame(4)}},
		{Key: KeyFinal, Games: []game.Game{scheduledGame(5)}},
	}
	if got := SelectCurrent(rounds); got != 1 {
		t.Fatalf("SelectCurrent = %d, want 1 (first incomplete)", got)
	}
}

func TestSelectCurrentAllPlayedPicksLast(t *testing.T) {
	t.Parallel()

	rounds := []Round{
		{Key: Key1of2, Games: []game.Game{finishedGame(1)}},
		{Key: KeyFinal, Games: []game.Game{finishedGame(2)}},
		{Key: "group_9", Games: nil},
	}
	if got := SelectCurrent(rounds); got != 1 {
		t.Fatalf("SelectCurrent = %d, want 1 (last round with games)", got)
	}
}

func TestSelectCurrentNoGames(t *testing.T) {
	t.Parallel()

	if got := SelectCurrent(nil); got != -1 {
		t.Fatalf("SelectCurrent(nil) = %d, want -1", got)
	}
	if got := SelectCurrent([]Round{{Key: KeyFinal}}); got != -1 {
		t.Fatalf("SelectCurrent(empty rounds) = %d, want -1", got)
	}
}
