package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/qazleague/cup-service/internal/domain/participant"
	"github.com/qazleague/cup-service/internal/domain/standings"
	"github.com/qazleague/cup-service/internal/platform/logging"
)

type stubCalculator struct {
	mu    sync.Mutex
	calls []standings.Filters
	err   error
}

func (c *stubCalculator) Calculate(_ context.Context, _ int64, filters standings.Filters) ([]standings.Row, error) {
	c.mu.Lock()
	c.calls = append(c.calls, filters)
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	rows := make([]standings.Row, 0, len(filters.TeamIDs))
	for i, id := range filters.TeamIDs {
		rows = append(rows, standings.Row{Position: i + 1, TeamID: id})
	}
	return rows, nil
}

func groupMember(id, teamID int64, group string, disqualified bool) participant.Participant {
	return participant.Participant{ID: id, SeasonID: 1, TeamID: teamID, GroupName: group, IsDisqualified: disqualified}
}

func TestGroupStandingsServiceListGroups(t *testing.T) {
	t.Parallel()

	repo := &stubParticipantRepository{bySeason: map[int64][]participant.Participant{
		1: {
			groupMember(1, 11, "B", false),
			groupMember(2, 12, "A", false),
			groupMember(3, 13, "A", false),
			groupMember(4, 14, "A", true), // disqualified, excluded
			groupMember(5, 15, "", false), // ungrouped, excluded
		},
	}}
	calc := &stubCalculator{}
	svc := NewGroupStandingsService(repo, calc, logging.NewNop())

	groups, err := svc.ListGroups(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "A" || groups[1].Name != "B" {
		t.Fatalf("group order = %q, %q, want A, B", groups[0].Name, groups[1].Name)
	}

	gotA := make([]int64, 0, len(groups[0].Rows))
	for _, r := range groups[0].Rows {
		gotA = append(gotA, r.TeamID)
	}
	sort.Slice(gotA, func(i, j int) bool { return gotA[i] < gotA[j] })
	if len(gotA) != 2 || gotA[0] != 12 || gotA[1] != 13 {
		t.Fatalf("group A teams = %v, want [12 13]", gotA)
	}
	if len(calc.calls) != 2 {
		t.Fatalf("calculator called %d times, want 2", len(calc.calls))
	}
}

func TestGroupStandingsServiceKeepsFullyDisqualifiedGroup(t *testing.T) {
	t.Parallel()

	repo := &stubParticipantRepository{bySeason: map[int64][]participant.Participant{
		1: {
			groupMember(1, 11, "A", false),
			groupMember(2, 12, "B", true),
			groupMember(3, 13, "B", true),
		},
	}}
	calc := &stubCalculator{}
	svc := NewGroupStandingsService(repo, calc, logging.NewNop())

	groups, err := svc.ListGroups(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2 (group B stays with an empty table)", len(groups))
	}
	if groups[1].Name != "B" || groups[1].Rows == nil || len(groups[1].Rows) != 0 {
		t.Fatalf("group B = %+v, want empty rows", groups[1])
	}
	if len(calc.calls) != 1 {
		t.Fatalf("calculator called %d times, want 1 (empty group skips it)", len(calc.calls))
	}
}

func TestGroupStandingsServiceNoGroups(t *testing.T) {
	t.Parallel()

	repo := &stubParticipantRepository{bySeason: map[int64][]participant.Participant{
		1: {groupMember(1, 11, "", false)},
	}}
	svc := NewGroupStandingsService(repo, &stubCalculator{}, logging.NewNop())

	groups, err := svc.ListGroups(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if groups != nil {
		t.Fatalf("got %+v, want nil", groups)
	}
}

func TestGroupStandingsServiceCalculatorError(t *testing.T) {
	t.Parallel()

	repo := &stubParticipantRepository{bySeason: map[int64][]participant.Participant{
		1: {groupMember(1, 11, "A", false)},
	}}
	wantErr := errors.New("boom")
	svc := NewGroupStandingsService(repo, &stubCalculator{err: wantErr}, logging.NewNop())

	if _, err := svc.ListGroups(context.Background(), 1); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
