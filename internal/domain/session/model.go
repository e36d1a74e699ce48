package session

import (
	"fmt"

	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
)

// Key names one value kept in a session.
type Key string

const (
	KeyCurrency       Key = "currency"
	KeyCurrencySymbol Key = "currency_symbol"
	KeyCareerUser     Key = "career_user"
)

func ParseKey(raw string) (Key, error) {
	switch key := Key(raw); key {
	case KeyCurrency, KeyCurrencySymbol, KeyCareerUser:
		return key, nil
	default:
		return "", fmt.Errorf("unknown session key %q", raw)
	}
}

// CareerTeams is the cached summary of the viewer's career club and national team.
type CareerTeams struct {
	ClubTeamID       int64  `json:"clubteamid"`
	ClubTeamName     string `json:"clubteamname"`
	NationalTeamID   int64  `json:"nationalteamid"`
	NationalTeamName string `json:"nationalteamname"`
}

// State is the typed content of one browser session. Nil fields are unset.
type State struct {
	Currency       *user.Currency `json:"currency,omitempty"`
	CurrencySymbol *string        `json:"currency_symbol,omitempty"`
	CareerUser     *CareerTeams   `json:"career_user,omitempty"`
}

// Session is the per-request handle on a stored session.
type Session struct {
	ID string

	state    State
	modified bool
}

func New(id string) *Session {
	return &Session{ID: id}
}

func Restore(id string, state State) *Session {
	return &Session{ID: id, state: state}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) Currency() (user.Currency, bool) {
	if s.state.Currency == nil {
		return 0, false
	}
	return *s.state.Currency, true
}

// SetCurrency stores the currency index and drops the derived symbol.
func (s *Session) SetCurrency(c user.Currency) {
	s.state.Currency = &c
	s.state.CurrencySymbol = nil
	s.modified = true
}

func (s *Session) CurrencySymbol() (string, bool) {
	if s.state.CurrencySymbol == nil {
		return "", false
	}
	return *s.state.CurrencySymbol, true
}

// DeriveCurrencySymbol writes the symbol of the stored currency. It is the
// only writer of the symbol so the two values never disagree.
func (s *Session) DeriveCurrencySymbol() (string, bool) {
	if s.state.Currency == nil {
		return "", false
	}
	symbol, ok := s.state.Currency.Symbol()
	if !ok {
		return "", false
	}
	s.state.CurrencySymbol = &symbol
	s.modified = true
	return symbol, true
}

func (s *Session) CareerUser() (CareerTeams, bool) {
	if s.state.CareerUser == nil {
		return CareerTeams{}, false
	}
	return *s.state.CareerUser, true
}

func (s *Session) SetCareerUser(teams CareerTeams) {
	s.state.CareerUser = &teams
	s.modified = true
}

// Delete removes key; deleting an absent key is a no-op.
func (s *Session) Delete(key Key) {
	switch key {
	case KeyCurrency:
		if s.state.Currency == nil {
			return
		}
		s.state.Currency = nil
	case KeyCurrencySymbol:
		if s.state.CurrencySymbol == nil {
			return
		}
		s.state.CurrencySymbol = nil
	case KeyCareerUser:
		if s.state.CareerUser == nil {
			return
		}
		s.state.CareerUser = nil
	default:
		return
	}
	s.modified = true
}
