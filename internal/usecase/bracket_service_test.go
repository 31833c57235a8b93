package usecase

import (
	"context"
	"testing"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/round"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

func playoffRound(key string, games ...game.Game) round.Round {
	return round.Round{Key: key, Games: games}
}

func TestSynthesizedBracketSideBalance(t *testing.T) {
	t.Parallel()

	src := NewSynthesizedBracketSource()
	for n := 0; n <= 4; n++ {
		games := make([]game.Game, n)
		for i := range games {
			games[i] = scheduledAt(int64(i+1), 10, i+1)
		}
		b, err := src.Build(context.Background(), 1, []round.Round{playoffRound(round.Key1of4, games...)})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if n == 0 {
			// a round with no games still yields a column
			if b == nil || len(b.Rounds) != 1 || len(b.Rounds[0].Entries) != 0 {
				t.Fatalf("n=0: got %+v, want single empty round", b)
			}
			continue
		}
		left, right := 0, 0
		for _, e := range b.Rounds[0].Entries {
			switch e.Side {
			case bracket.SideLeft:
				left++
			case bracket.SideRight:
				right++
			default:
				t.Fatalf("n=%d: unexpected side %q", n, e.Side)
			}
		}
		wantLeft := (n + 1) / 2
		if left != wantLeft || right != n-wantLeft {
			t.Fatalf("n=%d: left/right = %d/%d, want %d/%d", n, left, right, wantLeft, n-wantLeft)
		}
	}
}

func TestSynthesizedBracketCenterAndOrdering(t *testing.T) {
	t.Parallel()

	rounds := []round.Round{
		playoffRound(round.KeyFinal, scheduledAt(7, 40, 9)),
		playoffRound("group_3", scheduledAt(8, 50, 2)),
		playoffRound(round.Key3rdPlace, scheduledAt(6, 35, 8)),
		playoffRound(round.Key1of2, finishedAt(4, 30, 5, 1, 0), finishedAt(5, 30, 5, 2, 2)),
	}

	b, err := NewSynthesizedBracketSource().Build(context.Background(), 1, rounds)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantKeys := []string{round.Key1of2, round.Key3rdPlace, round.KeyFinal}
	if len(b.Rounds) != len(wantKeys) {
		t.Fatalf("got %d rounds, want %d (group round excluded)", len(b.Rounds), len(wantKeys))
	}
	for i, key := range wantKeys {
		if b.Rounds[i].Key != key {
			t.Errorf("round %d key = %q, want %q", i, b.Rounds[i].Key, key)
		}
	}
	if b.Rounds[0].Label != "Полуфинал" || b.Rounds[2].Label != "Финал" {
		t.Errorf("labels = %q/%q, want Полуфинал/Финал", b.Rounds[0].Label, b.Rounds[2].Label)
	}
	for _, r := range b.Rounds[1:] {
		for _, e := range r.Entries {
			if e.Side != bracket.SideCenter {
				t.Errorf("round %s entry side = %q, want center", r.Key, e.Side)
			}
		}
	}
	if !b.Rounds[1].Entries[0].IsThirdPlace {
		t.Errorf("third-place entry not flagged")
	}

	// synthetic IDs follow the input list order, not the display order:
	// the final is listed first and gets id 1
	if got := b.Rounds[2].Entries[0].ID; got != 1 {
		t.Errorf("final entry id = %d, want 1", got)
	}
	if got := b.Rounds[1].Entries[0].ID; got != 2 {
		t.Errorf("third-place entry id = %d, want 2", got)
	}
	if b.Rounds[0].Entries[0].ID != 3 || b.Rounds[0].Entries[1].ID != 4 {
		t.Errorf("semifinal entry ids = %d, %d, want 3, 4",
			b.Rounds[0].Entries[0].ID, b.Rounds[0].Entries[1].ID)
	}
}

func TestSynthesizedBracketMergesSameKeyRounds(t *testing.T) {
	t.Parallel()

	// Two stages both classifying to the semifinal key collapse into one
	// bracket round with their entries concatenated.
	rounds := []round.Round{
		playoffRound(round.Key1of2, finishedAt(1, 10, 1, 2, 0)),
		playoffRound(round.Key1of2, finishedAt(2, 10, 2, 1, 1)),
		playoffRound(round.KeyFinal, scheduledAt(3, 20, 5)),
	}

	b, err := NewSynthesizedBracketSource().Build(context.Background(), 1, rounds)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(b.Rounds) != 2 {
		t.Fatalf("got %d rounds, want 2 (semifinal stages merged)", len(b.Rounds))
	}
	semis := b.Rounds[0]
	if semis.Key != round.Key1of2 || len(semis.Entries) != 2 {
		t.Fatalf("merged round = %q with %d entries, want 1_2 with 2", semis.Key, len(semis.Entries))
	}
	if semis.Entries[0].ID != 1 || semis.Entries[1].ID != 2 {
		t.Fatalf("merged entry ids = %d, %d, want 1, 2", semis.Entries[0].ID, semis.Entries[1].ID)
	}
	// each stage's single game sits at index 0 of its own list, so both
	// land on the left; sort order keeps them apart
	if semis.Entries[0].Side != bracket.SideLeft || semis.Entries[1].Side != bracket.SideLeft {
		t.Fatalf("merged sides = %q, %q", semis.Entries[0].Side, semis.Entries[1].Side)
	}
	if semis.Entries[0].SortOrder != 1 || semis.Entries[1].SortOrder != 2 {
		t.Fatalf("merged sort orders = %d, %d, want 1, 2", semis.Entries[0].SortOrder, semis.Entries[1].SortOrder)
	}
	if b.Rounds[1].Key != round.KeyFinal || b.Rounds[1].Entries[0].ID != 3 {
		t.Fatalf("final round = %+v", b.Rounds[1])
	}
}

func TestSynthesizedBracketNoPlayoffRounds(t *testing.T) {
	t.Parallel()

	b, err := NewSynthesizedBracketSource().Build(context.Background(), 1, []round.Round{
		playoffRound("group_1", scheduledAt(1, 10, 1)),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b != nil {
		t.Fatalf("got %+v, want nil bracket", b)
	}
}

func TestStoredBracketSourcePrecedence(t *testing.T) {
	t.Parallel()

	games := &stubGameRepository{bySeason: map[int64][]game.Game{
		1: {finishedAt(1, 10, 1, 2, 1), scheduledAt(2, 20, 5)},
	}}
	stored := NewStoredBracketSource(&stubBracketRepository{bySeason: map[int64][]bracket.StoredEntry{
		1: {
			{ID: 100, SeasonID: 1, RoundName: round.KeyFinal, Side: bracket.SideCenter, SortOrder: 1, GameID: 2, IsVisible: true},
			{ID: 101, SeasonID: 1, RoundName: round.Key1of2, Side: bracket.SideLeft, SortOrder: 1, GameID: 1, IsVisible: true},
			{ID: 102, SeasonID: 1, RoundName: round.Key1of2, Side: bracket.SideRight, SortOrder: 1, GameID: 3, IsVisible: true},  // missing game
			{ID: 103, SeasonID: 1, RoundName: round.Key1of2, Side: bracket.SideRight, SortOrder: 2, GameID: 1, IsVisible: false}, // hidden
		},
	}}, games, logging.NewNop())

	svc := NewBracketService(stored, NewSynthesizedBracketSource())
	b, err := svc.Resolve(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if b == nil || len(b.Rounds) != 2 {
		t.Fatalf("got %+v, want 2 stored rounds", b)
	}
	if b.Rounds[0].Key != round.Key1of2 || b.Rounds[1].Key != round.KeyFinal {
		t.Fatalf("round order = %q, %q", b.Rounds[0].Key, b.Rounds[1].Key)
	}
	if len(b.Rounds[0].Entries) != 1 {
		t.Fatalf("semifinal entries = %d, want 1 (hidden and dangling rows skipped)", len(b.Rounds[0].Entries))
	}
	if b.Rounds[0].Entries[0].Game.ID != 1 {
		t.Fatalf("stored entry resolved game %d, want 1", b.Rounds[0].Entries[0].Game.ID)
	}
}

func TestBracketServiceFallsBackToSynthesis(t *testing.T) {
	t.Parallel()

	games := &stubGameRepository{bySeason: map[int64][]game.Game{}}
	stored := NewStoredBracketSource(&stubBracketRepository{bySeason: map[int64][]bracket.StoredEntry{}}, games, logging.NewNop())
	svc := NewBracketService(stored, NewSynthesizedBracketSource())

	b, err := svc.Resolve(context.Background(), 1, []round.Round{
		playoffRound(round.KeyFinal, scheduledAt(1, 10, 1)),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if b == nil || len(b.Rounds) != 1 || b.Rounds[0].Key != round.KeyFinal {
		t.Fatalf("got %+v, want synthesized final round", b)
	}
}
