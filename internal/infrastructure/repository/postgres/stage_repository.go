package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qazleague/cup-service/internal/domain/stage"
	qb "github.com/qazleague/cup-service/internal/platform/querybuilder"
)

type StageRepository struct {
	db *sqlx.DB
}

func NewStageRepository(db *sqlx.DB) *StageRepository {
	return &StageRepository{db: db}
}

func (r *StageRepository) ListBySeason(ctx context.Context, seasonID int64) ([]stage.Stage, error) {
	query, args, err := qb.Select("*").From("stages").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("sort_order", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stages query: %w", err)
	}

	var rows []stageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stages: %w", err)
	}

	out := make([]stage.Stage, 0, len(rows))
	for _, row := range rows {
		out = append(out, stage.Stage{
			ID:          row.ID,
			SeasonID:    row.SeasonID,
			Name:        row.Name,
			NameKZ:      nullString(row.NameKZ),
			NameEN:      nullString(row.NameEN),
			StageNumber: nullIntPtr(row.StageNumber),
			SortOrder:   row.SortOrder,
		})
	}
	return out, nil
}
