package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fifa-tracker/internal/domain/career"
	qb "github.com/riskibarqy/fifa-tracker/internal/platform/querybuilder"
)

type CareerRepository struct {
	db *sqlx.DB
}

func NewCareerRepository(db *sqlx.DB) *CareerRepository {
	return &CareerRepository{db: db}
}

// FirstForUser picks the oldest career record of owner.
func (r *CareerRepository) FirstForUser(ctx context.Context, owner string) (career.CareerUser, bool, error) {
	query, args, err := qb.Select("id", "owner", "club_team_id", "national_team_id").
		From("career_users").
		Where(qb.Eq("owner", owner)).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return career.CareerUser{}, false, fmt.Errorf("build select career user query: %w", err)
	}

	var row careerUserTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return career.CareerUser{}, false, nil
		}
		if isUndefinedTable(err) {
			return career.CareerUser{}, false, fmt.Errorf("career_users table is missing, run migrations: %w", err)
		}
		return career.CareerUser{}, false, fmt.Errorf("select career user owner=%s: %w", owner, err)
	}

	return career.CareerUser{
		Owner:          row.Owner,
		ClubTeamID:     nullInt64Ptr(row.ClubTeamID),
		NationalTeamID: nullInt64Ptr(row.NationalTeamID),
	}, true, nil
}
