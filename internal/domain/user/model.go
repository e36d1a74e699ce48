package user

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// GuestUsername identifies anonymous visitors when scoping career data.
	GuestUsername = "guest"

	// DefaultFIFAEdition is used whenever a profile edition cannot be read.
	DefaultFIFAEdition = 21
)

// Currency is an index into the fixed symbol table.
type Currency int

const (
	CurrencyDollar Currency = iota
	CurrencyEuro
	CurrencyPound
)

const DefaultCurrency = CurrencyEuro

var currencySymbols = [...]string{"$", "€", "£"}

// Symbol returns the display symbol, false when the index is outside the table.
func (c Currency) Symbol() (string, bool) {
	if c < 0 || int(c) >= len(currencySymbols) {
		return "", false
	}
	return currencySymbols[c], true
}

func (c Currency) Valid() bool {
	_, ok := c.Symbol()
	return ok
}

// Profile holds per-user preferences. Exactly one exists per user once created.
type Profile struct {
	Currency     Currency
	FIFAEdition  string
	IsPublic     bool
	LastActivity time.Time
}

// Edition coerces the stored edition to an integer.
func (p Profile) Edition() (int, error) {
	raw := strings.TrimSpace(p.FIFAEdition)
	if raw == "" {
		return 0, fmt.Errorf("fifa edition is empty")
	}
	edition, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse fifa edition %q: %w", raw, err)
	}
	return edition, nil
}

// User is an account of the tracker. Profile is nil when no profile row exists.
type User struct {
	ID         string
	Username   string
	Email      string
	IsStaff    bool
	DateJoined time.Time
	Profile    *Profile
}

// Principal is the identity returned by the account service.
type Principal struct {
	UserID string
	Email  string
}
