package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	qb "github.com/riskibarqy/fifa-tracker/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func selectUsers() *qb.SelectBuilder {
	return qb.Select(userColumns...).
		From("users u").
		LeftJoin("user_profiles p", "p.user_id = u.id")
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	query, args, err := selectUsers().
		Where(qb.Eq("u.username", username)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user by username query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := selectUsers().
		Where(qb.Eq("u.id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user by id query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args []any) (user.User, bool, error) {
	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := selectUsers().
		OrderBy("u.username").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, profile user.Profile) error {
	query, args, err := qb.UpsertModel("user_profiles", profileUpsertModel{
		UserID:      userID,
		Currency:    int(profile.Currency),
		FIFAEdition: profile.FIFAEdition,
		IsPublic:    profile.IsPublic,
	}, "user_id")
	if err != nil {
		return fmt.Errorf("build upsert profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert profile user=%s: %w", userID, err)
	}

	return nil
}

func (r *UserRepository) TouchLastActivity(ctx context.Context, userID string, at time.Time) error {
	query, args, err := qb.Update("user_profiles").
		Set("last_activity", at).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build touch last activity query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("touch last activity user=%s: %w", userID, err)
	}

	return nil
}
