package usecase

import (
	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
)

// Request is the slice of an incoming request the session resolvers read.
// HasOwner is true whenever the owner query parameter is present, even empty.
type Request struct {
	Session  *session.Session
	Viewer   *user.User
	Owner    string
	HasOwner bool
}

type CurrentUserKind int

const (
	CurrentUserGuest CurrentUserKind = iota
	CurrentUserPublicOwner
	CurrentUserSelf
)

func (k CurrentUserKind) String() string {
	switch k {
	case CurrentUserPublicOwner:
		return "public_owner"
	case CurrentUserSelf:
		return "self"
	default:
		return "guest"
	}
}

// CurrentUser is whose data a request is looking at: an anonymous guest, the
// public profile named by ?owner=, or the authenticated viewer.
type CurrentUser struct {
	Kind     CurrentUserKind
	Username string
	User     *user.User
}

func GuestUser() CurrentUser {
	return CurrentUser{Kind: CurrentUserGuest, Username: user.GuestUsername}
}

func PublicOwner(username string) CurrentUser {
	return CurrentUser{Kind: CurrentUserPublicOwner, Username: username}
}

func Self(u *user.User) CurrentUser {
	out := CurrentUser{Kind: CurrentUserSelf, User: u}
	if u != nil {
		out.Username = u.Username
	}
	return out
}

// Identifier is the username that scopes career and team queries.
func (c CurrentUser) Identifier() string {
	switch c.Kind {
	case CurrentUserSelf:
		if c.User != nil {
			return c.User.Username
		}
	case CurrentUserPublicOwner:
		return c.Username
	}
	return user.GuestUsername
}
