package httpapi

import (
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

type sessionContextDTO struct {
	Currency       *int           `json:"currency"`
	CurrencySymbol string         `json:"currencySymbol"`
	CurrentUser    currentUserDTO `json:"currentUser"`
	FIFAEdition    int            `json:"fifaEdition"`
	CareerUser     careerTeamsDTO `json:"careerUser"`
}

type currentUserDTO struct {
	Kind     string `json:"kind"`
	Username string `json:"username"`
}

type careerTeamsDTO struct {
	ClubTeamID       int64  `json:"clubTeamId"`
	ClubTeamName     string `json:"clubTeamName"`
	NationalTeamID   int64  `json:"nationalTeamId"`
	NationalTeamName string `json:"nationalTeamName"`
}

type profileDTO struct {
	Currency       int    `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
	FIFAEdition    string `json:"fifaEdition"`
	IsPublic       bool   `json:"isPublic"`
	LastActivity   string `json:"lastActivity,omitempty"`
}

type userDTO struct {
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	IsStaff    bool        `json:"isStaff"`
	DateJoined string      `json:"dateJoined,omitempty"`
	Profile    *profileDTO `json:"profile,omitempty"`
}

type userListRowDTO struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	IsStaff      bool   `json:"isStaff"`
	LastActivity string `json:"lastActivity"`
}

type userListDTO struct {
	Columns []string         `json:"columns"`
	Rows    []userListRowDTO `json:"rows"`
}

type inlineDTO struct {
	Model             string `json:"model"`
	FKName            string `json:"fkName"`
	Style             string `json:"style"`
	VerboseNamePlural string `json:"verboseNamePlural"`
	CanDelete         bool   `json:"canDelete"`
}

type userFormDTO struct {
	User    *userDTO    `json:"user,omitempty"`
	Inlines []inlineDTO `json:"inlines"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func sessionContextToDTO(sess *session.Session, current usecase.CurrentUser, edition int, teams session.CareerTeams) sessionContextDTO {
	out := sessionContextDTO{
		CurrentUser: currentUserDTO{
			Kind:     current.Kind.String(),
			Username: current.Identifier(),
		},
		FIFAEdition: edition,
		CareerUser: careerTeamsDTO{
			ClubTeamID:       teams.ClubTeamID,
			ClubTeamName:     teams.ClubTeamName,
			NationalTeamID:   teams.NationalTeamID,
			NationalTeamName: teams.NationalTeamName,
		},
	}
	if sess == nil {
		return out
	}
	if currency, ok := sess.Currency(); ok {
		v := int(currency)
		out.Currency = &v
	}
	out.CurrencySymbol, _ = sess.CurrencySymbol()
	return out
}

func userToDTO(u user.User) userDTO {
	out := userDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		IsStaff:    u.IsStaff,
		DateJoined: formatTime(u.DateJoined),
	}
	if u.Profile != nil {
		symbol, _ := u.Profile.Currency.Symbol()
		out.Profile = &profileDTO{
			Currency:       int(u.Profile.Currency),
			CurrencySymbol: symbol,
			FIFAEdition:    u.Profile.FIFAEdition,
			IsPublic:       u.Profile.IsPublic,
			LastActivity:   formatTime(u.Profile.LastActivity),
		}
	}
	return out
}

func userListRowToDTO(row usecase.UserListRow) userListRowDTO {
	return userListRowDTO{
		Username:     row.Username,
		Email:        row.Email,
		IsStaff:      row.IsStaff,
		LastActivity: formatTime(row.LastActivity),
	}
}

func userFormToDTO(form usecase.UserForm) userFormDTO {
	out := userFormDTO{Inlines: make([]inlineDTO, 0, len(form.Inlines))}
	if form.User != nil {
		u := userToDTO(*form.User)
		out.User = &u
	}
	for _, inline := range form.Inlines {
		out.Inlines = append(out.Inlines, inlineDTO{
			Model:             inline.Model,
			FKName:            inline.FKName,
			Style:             inline.Style,
			VerboseNamePlural: inline.VerboseNamePlural,
			CanDelete:         inline.CanDelete,
		})
	}
	return out
}
