package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
)

// userTableModel is a users row LEFT JOINed with its profile; profile columns
// are null when the user has no profile yet.
type userTableModel struct {
	ID           string         `db:"id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	IsStaff      bool           `db:"is_staff"`
	DateJoined   time.Time      `db:"date_joined"`
	ProfileID    sql.NullInt64  `db:"profile_id"`
	Currency     sql.NullInt64  `db:"currency"`
	FIFAEdition  sql.NullString `db:"fifa_edition"`
	IsPublic     sql.NullBool   `db:"is_public"`
	LastActivity sql.NullTime   `db:"last_activity"`
}

var userColumns = []string{
	"u.id",
	"u.username",
	"u.email",
	"u.is_staff",
	"u.date_joined",
	"p.id AS profile_id",
	"p.currency",
	"p.fifa_edition",
	"p.is_public",
	"p.last_activity",
}

func (m userTableModel) toDomain() user.User {
	out := user.User{
		ID:         m.ID,
		Username:   m.Username,
		Email:      m.Email,
		IsStaff:    m.IsStaff,
		DateJoined: m.DateJoined,
	}
	if !m.ProfileID.Valid {
		return out
	}

	out.Profile = &user.Profile{
		Currency:     user.Currency(m.Currency.Int64),
		FIFAEdition:  m.FIFAEdition.String,
		IsPublic:     m.IsPublic.Bool,
		LastActivity: m.LastActivity.Time,
	}
	return out
}

// profileUpsertModel leaves last_activity to the column default on insert and
// untouched on update.
type profileUpsertModel struct {
	UserID      string `db:"user_id"`
	Currency    int    `db:"currency"`
	FIFAEdition string `db:"fifa_edition"`
	IsPublic    bool   `db:"is_public"`
}
