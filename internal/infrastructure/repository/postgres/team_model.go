package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qazleague/cup-service/internal/domain/game"
	qb "github.com/qazleague/cup-service/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID      int64          `db:"id"`
	Name    string         `db:"name"`
	NameKZ  sql.NullString `db:"name_kz"`
	NameEN  sql.NullString `db:"name_en"`
	LogoURL sql.NullString `db:"logo_url"`
}

// loadTeamRefs fetches the named teams in one query and returns them
// keyed by id.
func loadTeamRefs(ctx context.Context, db *sqlx.DB, teamIDs []int64) (map[int64]game.TeamRef, error) {
	if len(teamIDs) == 0 {
		return map[int64]game.TeamRef{}, nil
	}

	ids := make([]any, 0, len(teamIDs))
	seen := make(map[int64]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("teams").
		Where(qb.In("id", ids)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make(map[int64]game.TeamRef, len(rows))
	for _, row := range rows {
		out[row.ID] = game.TeamRef{
			ID:      row.ID,
			Name:    row.Name,
			NameKZ:  nullString(row.NameKZ),
			NameEN:  nullString(row.NameEN),
			LogoURL: nullString(row.LogoURL),
		}
	}
	return out, nil
}
