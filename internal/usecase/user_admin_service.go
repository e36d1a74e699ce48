package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
)

// Inline describes a related record edited on the user form.
type Inline struct {
	Model             string
	FKName            string
	Style             string
	VerboseNamePlural string
	CanDelete         bool
}

var ProfileInline = Inline{
	Model:             "profile",
	FKName:            "user",
	Style:             "stacked",
	VerboseNamePlural: "Profile",
	CanDelete:         false,
}

// UserListColumns is the column order of the admin user list.
var UserListColumns = []string{"username", "email", "is_staff", "last_activity"}

type UserListRow struct {
	Username     string
	Email        string
	IsStaff      bool
	LastActivity time.Time
}

type UserForm struct {
	User    *user.User
	Inlines []Inline
}

// ProfileChanges holds the profile fields to overwrite; nil fields are kept.
type ProfileChanges struct {
	Currency    *user.Currency
	FIFAEdition *int
	IsPublic    *bool
}

type UserAdminService struct {
	userRepo user.Repository
}

func NewUserAdminService(userRepo user.Repository) *UserAdminService {
	return &UserAdminService{userRepo: userRepo}
}

// LastActivity is the derived column of the admin list.
func (s *UserAdminService) LastActivity(u user.User) (time.Time, error) {
	if u.Profile == nil {
		return time.Time{}, fmt.Errorf("%w: user=%s", ErrProfileMissing, u.Username)
	}
	return u.Profile.LastActivity, nil
}

// Inlines hides the profile inline on the add form: a profile cannot exist
// before its user is saved.
func (s *UserAdminService) Inlines(obj *user.User) []Inline {
	if obj == nil {
		return []Inline{}
	}
	return []Inline{ProfileInline}
}

func (s *UserAdminService) ListUsers(ctx context.Context) ([]UserListRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserAdminService.ListUsers")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("list users: %w", err))
	}

	out := make([]UserListRow, 0, len(users))
	for _, item := range users {
		// A user without a profile shows an empty last activity cell.
		lastActivity, err := s.LastActivity(item)
		if err != nil && !errors.Is(err, ErrProfileMissing) {
			return nil, failSpan(span, err)
		}
		out = append(out, UserListRow{
			Username:     item.Username,
			Email:        item.Email,
			IsStaff:      item.IsStaff,
			LastActivity: lastActivity,
		})
	}

	return out, nil
}

func (s *UserAdminService) AddForm() UserForm {
	return UserForm{Inlines: s.Inlines(nil)}
}

func (s *UserAdminService) ChangeForm(ctx context.Context, username string) (UserForm, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserAdminService.ChangeForm")
	defer span.End()

	found, err := s.getUser(ctx, username)
	if err != nil {
		return UserForm{}, err
	}

	return UserForm{User: &found, Inlines: s.Inlines(&found)}, nil
}

// UpdateProfile saves the profile inline of username, creating the profile
// when the user has none yet.
func (s *UserAdminService) UpdateProfile(ctx context.Context, username string, changes ProfileChanges) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserAdminService.UpdateProfile")
	defer span.End()

	found, err := s.getUser(ctx, username)
	if err != nil {
		return user.User{}, err
	}

	return saveProfile(ctx, s.userRepo, found, changes)
}

func (s *UserAdminService) getUser(ctx context.Context, username string) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	found, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, username)
	}

	return found, nil
}

func saveProfile(ctx context.Context, repo user.Repository, target user.User, changes ProfileChanges) (user.User, error) {
	profile := user.Profile{
		Currency:    user.DefaultCurrency,
		FIFAEdition: strconv.Itoa(user.DefaultFIFAEdition),
	}
	if target.Profile != nil {
		profile = *target.Profile
	}

	if changes.Currency != nil {
		if !changes.Currency.Valid() {
			return user.User{}, fmt.Errorf("%w: unsupported currency %d", ErrInvalidInput, *changes.Currency)
		}
		profile.Currency = *changes.Currency
	}
	if changes.FIFAEdition != nil {
		if *changes.FIFAEdition <= 0 {
			return user.User{}, fmt.Errorf("%w: fifa edition must be > 0", ErrInvalidInput)
		}
		profile.FIFAEdition = strconv.Itoa(*changes.FIFAEdition)
	}
	if changes.IsPublic != nil {
		profile.IsPublic = *changes.IsPublic
	}

	if err := repo.UpdateProfile(ctx, target.ID, profile); err != nil {
		return user.User{}, fmt.Errorf("update profile: %w", err)
	}

	target.Profile = &profile
	return target, nil
}
