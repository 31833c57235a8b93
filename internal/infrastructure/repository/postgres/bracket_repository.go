package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	qb "github.com/qazleague/cup-service/internal/platform/querybuilder"
)

type BracketRepository struct {
	db *sqlx.DB
}

func NewBracketRepository(db *sqlx.DB) *BracketRepository {
	return &BracketRepository{db: db}
}

func (r *BracketRepository) ListBySeason(ctx context.Context, seasonID int64) ([]bracket.StoredEntry, error) {
	query, args, err := qb.Select("*").From("playoff_brackets").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("round_name", "sort_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select brackets query: %w", err)
	}

	var rows []bracketTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select brackets: %w", err)
	}

	out := make([]bracket.StoredEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, bracket.StoredEntry{
			ID:           row.ID,
			SeasonID:     row.SeasonID,
			RoundName:    row.RoundName,
			Side:         bracket.Side(row.Side),
			SortOrder:    row.SortOrder,
			GameID:       row.GameID,
			IsVisible:    row.IsVisible,
			IsThirdPlace: row.IsThirdPlace,
		})
	}
	return out, nil
}
