package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/round"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

// BracketSource builds a knockout bracket for a season, or returns nil
// when it has nothing to offer for that season.
type BracketSource interface {
	Build(ctx context.Context, seasonID int64, rounds []round.Round) (*bracket.Bracket, error)
}

// StoredBracketSource projects editor-curated bracket rows. It wins over
// synthesis whenever a season has at least one visible row.
type StoredBracketSource struct {
	bracketRepo bracket.Repository
	gameRepo    game.Repository
	logger      *logging.Logger
}

func NewStoredBracketSource(bracketRepo bracket.Repository, gameRepo game.Repository, logger *logging.Logger) *StoredBracketSource {
	return &StoredBracketSource{bracketRepo: bracketRepo, gameRepo: gameRepo, logger: logger}
}

func (s *StoredBracketSource) Build(ctx context.Context, seasonID int64, _ []round.Round) (*bracket.Bracket, error) {
	entries, err := s.bracketRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list bracket entries: %w", err)
	}

	byRound := make(map[string][]bracket.Entry)
	var keys []string
	for _, e := range entries {
		if !e.IsVisible {
			continue
		}
		g, exists, err := s.gameRepo.GetByID(ctx, e.GameID)
		if err != nil {
			return nil, fmt.Errorf("get bracket game: %w", err)
		}
		if !exists {
			s.logger.WarnContext(ctx, "bracket entry references missing game, skipped",
				"entry_id", e.ID, "game_id", e.GameID)
			continue
		}
		if _, seen := byRound[e.RoundName]; !seen {
			keys = append(keys, e.RoundName)
		}
		byRound[e.RoundName] = append(byRound[e.RoundName], bracket.Entry{
			ID:           e.ID,
			Side:         e.Side,
			SortOrder:    e.SortOrder,
			IsThirdPlace: e.IsThirdPlace,
			Game:         g,
		})
	}
	if len(byRound) == 0 {
		return nil, nil
	}

	sortRoundKeys(keys)
	b := &bracket.Bracket{Rounds: make([]bracket.Round, 0, len(keys))}
	for _, key := range keys {
		items := byRound[key]
		sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
		b.Rounds = append(b.Rounds, bracket.Round{Key: key, Label: round.Label(key), Entries: items})
	}
	return b, nil
}

// SynthesizedBracketSource derives a bracket from the schedule itself:
// playoff-shaped rounds become columns, games alternate between the left
// and right halves of the tree, and the final plus third-place games sit
// in the center.
type SynthesizedBracketSource struct{}

func NewSynthesizedBracketSource() *SynthesizedBracketSource {
	return &SynthesizedBracketSource{}
}

func (s *SynthesizedBracketSource) Build(_ context.Context, _ int64, rounds []round.Round) (*bracket.Bracket, error) {
	playoff := make([]round.Round, 0, len(rounds))
	for _, r := range rounds {
		if round.IsPlayoffKey(r.Key) {
			playoff = append(playoff, r)
		}
	}
	if len(playoff) == 0 {
		return nil, nil
	}

	// Entries are produced in list order so synthetic IDs follow the
	// schedule. Stages that classify to the same key (two semifinal
	// stages, say) merge into one round.
	byKey := make(map[string][]bracket.Entry)
	sideCounters := make(map[string]map[bracket.Side]int)
	var keys []string
	syntheticID := int64(0)
	for _, r := range playoff {
		if _, seen := sideCounters[r.Key]; !seen {
			keys = append(keys, r.Key)
			sideCounters[r.Key] = map[bracket.Side]int{}
		}
		for i, g := range r.Games {
			side := bracket.SideCenter
			if r.Key != round.KeyFinal && r.Key != round.Key3rdPlace {
				if i%2 == 0 {
					side = bracket.SideLeft
				} else {
					side = bracket.SideRight
				}
			}
			sideCounters[r.Key][side]++
			syntheticID++
			byKey[r.Key] = append(byKey[r.Key], bracket.Entry{
				ID:           syntheticID,
				Side:         side,
				SortOrder:    sideCounters[r.Key][side],
				IsThirdPlace: r.Key == round.Key3rdPlace,
				Game:         g,
			})
		}
	}

	sortRoundKeys(keys)
	b := &bracket.Bracket{Rounds: make([]bracket.Round, 0, len(keys))}
	for _, key := range keys {
		b.Rounds = append(b.Rounds, bracket.Round{Key: key, Label: round.Label(key), Entries: byKey[key]})
	}
	return b, nil
}

// BracketService resolves a season's bracket through an ordered list of
// sources, first non-nil answer wins.
type BracketService struct {
	sources []BracketSource
}

func NewBracketService(sources ...BracketSource) *BracketService {
	return &BracketService{sources: sources}
}

// Resolve builds the bracket from the first source that yields one.
// A nil bracket with nil error means the season has no knockout phase.
func (s *BracketService) Resolve(ctx context.Context, seasonID int64, rounds []round.Round) (*bracket.Bracket, error) {
	ctx, span := startUsecaseSpan(ctx, "BracketService.Resolve")
	defer span.End()

	for _, src := range s.sources {
		b, err := src.Build(ctx, seasonID, rounds)
		if err != nil {
			return nil, err
		}
		if b != nil {
			return b, nil
		}
	}
	return nil, nil
}

// sortRoundKeys orders bracket round keys canonically, unknown keys after
// the known ones in first-seen order.
func sortRoundKeys(keys []string) {
	rank := make(map[string]int)
	for i, k := range round.PlayoffOrder() {
		rank[k] = i
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, iok := rank[keys[i]]
		rj, jok := rank[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		default:
			return false
		}
	})
}
