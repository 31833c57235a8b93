package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qazleague/cup-service/internal/domain/game"
	qb "github.com/qazleague/cup-service/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListBySeason(ctx context.Context, seasonID int64) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("date", "time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	teams, err := loadTeamRefs(ctx, r.db, collectTeamIDs(rows))
	if err != nil {
		return nil, err
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(teams))
	}
	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game by id: %w", err)
	}

	teams, err := loadTeamRefs(ctx, r.db, collectTeamIDs([]gameTableModel{row}))
	if err != nil {
		return game.Game{}, false, err
	}
	return row.toDomain(teams), true, nil
}

func (r *GameRepository) UpdateLiveState(ctx context.Context, gameID int64, state game.LiveState) error {
	query, args, err := qb.Update("games").
		Set("is_live", state.IsLive).
		Set("home_score", toNullInt(state.HomeScore)).
		Set("away_score", toNullInt(state.AwayScore)).
		Set("status", state.RawStatus).
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update game live state: %w", err)
	}
	return nil
}
