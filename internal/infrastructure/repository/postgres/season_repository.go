package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qazleague/cup-service/internal/domain/season"
	qb "github.com/qazleague/cup-service/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("id", seasonID),
			qb.Eq("is_hidden", false),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}

	return season.Season{
		ID:                 row.ID,
		Name:               row.Name,
		NameKZ:             nullString(row.NameKZ),
		NameEN:             nullString(row.NameEN),
		ChampionshipName:   nullString(row.ChampionshipName),
		ChampionshipNameKZ: nullString(row.ChampionshipKZ),
		ChampionshipNameEN: nullString(row.ChampionshipEN),
		DateStart:          row.DateStart,
		DateEnd:            row.DateEnd,
		IsHidden:           row.IsHidden,
	}, true, nil
}
