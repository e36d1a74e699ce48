package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fifa-tracker/internal/domain/team"
	qb "github.com/riskibarqy/fifa-tracker/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// ListByIDsForUser returns teams of owner's save whose team id is in teamIDs.
func (r *TeamRepository) ListByIDsForUser(ctx context.Context, owner string, teamIDs []int64) ([]team.Team, error) {
	if len(teamIDs) == 0 {
		return []team.Team{}, nil
	}

	query, args, err := qb.Select("owner", "team_id", "team_name").
		From("career_teams").
		Where(
			qb.Eq("owner", owner),
			qb.Any("team_id", pq.Array(teamIDs)),
		).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select career teams query: %w", err)
	}

	var rows []careerTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("career_teams table is missing, run migrations: %w", err)
		}
		return nil, fmt.Errorf("select career teams owner=%s: %w", owner, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			Owner:    row.Owner,
			TeamID:   row.TeamID,
			TeamName: row.TeamName,
		})
	}

	return out, nil
}
