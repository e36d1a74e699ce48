package memory

import (
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/career"
	"github.com/riskibarqy/fifa-tracker/internal/domain/team"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
)

const (
	UserIDGuest   = "usr-guest"
	UserIDAdmin   = "usr-admin"
	UserIDAlice   = "usr-alice"
	UserIDBob     = "usr-bob"
	UserIDNoSetup = "usr-nosetup"
)

func int64Ref(v int64) *int64 {
	return &v
}

func SeedUsers() []user.User {
	joined := time.Date(2020, 9, 1, 10, 0, 0, 0, time.UTC)

	return []user.User{
		{
			ID:         UserIDGuest,
			Username:   user.GuestUsername,
			Email:      "guest@fifatracker.local",
			DateJoined: joined,
			Profile:    &user.Profile{Currency: user.CurrencyEuro, FIFAEdition: "21", IsPublic: true},
		},
		{
			ID:         UserIDAdmin,
			Username:   "admin",
			Email:      "admin@fifatracker.local",
			IsStaff:    true,
			DateJoined: joined,
			Profile:    &user.Profile{Currency: user.CurrencyEuro, FIFAEdition: "21"},
		},
		{
			ID:         UserIDAlice,
			Username:   "alice",
			Email:      "alice@fifatracker.local",
			DateJoined: joined.AddDate(0, 1, 0),
			Profile:    &user.Profile{Currency: user.CurrencyPound, FIFAEdition: "20", IsPublic: true},
		},
		{
			ID:         UserIDBob,
			Username:   "bob",
			Email:      "bob@fifatracker.local",
			DateJoined: joined.AddDate(0, 2, 0),
			Profile:    &user.Profile{Currency: user.CurrencyDollar, FIFAEdition: "21", IsPublic: false},
		},
		{
			ID:         UserIDNoSetup,
			Username:   "nosetup",
			Email:      "nosetup@fifatracker.local",
			DateJoined: joined.AddDate(0, 3, 0),
		},
	}
}

func SeedCareerUsers() []career.CareerUser {
	return []career.CareerUser{
		{Owner: user.GuestUsername, ClubTeamID: int64Ref(11), NationalTeamID: int64Ref(1318)},
		{Owner: "alice", ClubTeamID: int64Ref(10)},
		{Owner: "bob", ClubTeamID: int64Ref(5), NationalTeamID: int64Ref(1335)},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{Owner: user.GuestUsername, TeamID: 11, TeamName: "Manchester United"},
		{Owner: user.GuestUsername, TeamID: 1318, TeamName: "England"},
		{Owner: "alice", TeamID: 10, TeamName: "Manchester City"},
		{Owner: "bob", TeamID: 5, TeamName: "Chelsea"},
		{Owner: "bob", TeamID: 1335, TeamName: "Poland"},
	}
}
