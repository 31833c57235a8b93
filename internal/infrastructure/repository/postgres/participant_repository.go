package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qazleague/cup-service/internal/domain/participant"
	qb "github.com/qazleague/cup-service/internal/platform/querybuilder"
)

type ParticipantRepository struct {
	db *sqlx.DB
}

func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) ListBySeason(ctx context.Context, seasonID int64) ([]participant.Participant, error) {
	query, args, err := qb.Select("*").From("season_participants").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select participants query: %w", err)
	}

	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select participants: %w", err)
	}

	teamIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		teamIDs = append(teamIDs, row.TeamID)
	}
	teams, err := loadTeamRefs(ctx, r.db, teamIDs)
	if err != nil {
		return nil, err
	}

	out := make([]participant.Participant, 0, len(rows))
	for _, row := range rows {
		item := participant.Participant{
			ID:             row.ID,
			SeasonID:       row.SeasonID,
			TeamID:         row.TeamID,
			GroupName:      nullString(row.GroupName),
			IsDisqualified: row.IsDisqualified,
		}
		if ref, ok := teams[row.TeamID]; ok {
			item.TeamName = ref.Name
			item.TeamNameKZ = ref.NameKZ
			item.TeamNameEN = ref.NameEN
			item.TeamLogoURL = ref.LogoURL
		}
		out = append(out, item)
	}
	return out, nil
}
