package postgres

import "database/sql"

type careerUserTableModel struct {
	ID             int64         `db:"id"`
	Owner          string        `db:"owner"`
	ClubTeamID     sql.NullInt64 `db:"club_team_id"`
	NationalTeamID sql.NullInt64 `db:"national_team_id"`
}

type careerTeamTableModel struct {
	Owner    string `db:"owner"`
	TeamID   int64  `db:"team_id"`
	TeamName string `db:"team_name"`
}
