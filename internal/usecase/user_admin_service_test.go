package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	usermock "github.com/riskibarqy/fifa-tracker/internal/mocks/domain/user"
	"github.com/stretchr/testify/mock"
)

func TestUserAdminService_Inlines(t *testing.T) {
	t.Parallel()

	service := NewUserAdminService(usermock.NewRepository(t))

	if got := service.Inlines(nil); len(got) != 0 {
		t.Fatalf("expected no inlines on add form, got %d", len(got))
	}

	got := service.Inlines(&user.User{Username: "alice"})
	if len(got) != 1 || got[0] != ProfileInline {
		t.Fatalf("expected only the profile inline, got %+v", got)
	}
	if got[0].CanDelete {
		t.Fatalf("profile inline must not be deletable")
	}
}

func TestUserAdminService_LastActivity(t *testing.T) {
	t.Parallel()

	service := NewUserAdminService(usermock.NewRepository(t))
	seen := time.Date(2020, 10, 9, 18, 30, 0, 0, time.UTC)

	got, err := service.LastActivity(user.User{Username: "alice", Profile: &user.Profile{LastActivity: seen}})
	if err != nil {
		t.Fatalf("last activity: %v", err)
	}
	if !got.Equal(seen) {
		t.Fatalf("unexpected last activity: %s", got)
	}

	if _, err := service.LastActivity(user.User{Username: "bob"}); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
}

func TestUserAdminService_ListUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserAdminService(repo)
	seen := time.Date(2020, 10, 9, 18, 30, 0, 0, time.UTC)

	repo.On("List", ctx).Return([]user.User{
		{Username: "admin", Email: "admin@example.com", IsStaff: true, Profile: &user.Profile{LastActivity: seen}},
		{Username: "alice", Email: "alice@example.com", Profile: &user.Profile{}},
	}, nil).Once()

	rows, err := service.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	if !rows[0].IsStaff || !rows[0].LastActivity.Equal(seen) {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestUserAdminService_ListUsersKeepsUserWithoutProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserAdminService(repo)

	repo.On("List", ctx).Return([]user.User{
		{Username: "alice", Email: "alice@example.com", Profile: &user.Profile{}},
		{Username: "nosetup", Email: "nosetup@example.com"},
	}, nil).Once()

	rows, err := service.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	if rows[1].Username != "nosetup" || !rows[1].LastActivity.IsZero() {
		t.Fatalf("expected empty last activity for user without profile, got %+v", rows[1])
	}
}

func TestUserAdminService_ChangeFormNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserAdminService(repo)

	repo.On("GetByUsername", ctx, "ghost").Return(user.User{}, false, nil).Once()

	if _, err := service.ChangeForm(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserAdminService_UpdateProfileCreatesMissingProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserAdminService(repo)
	public := true

	repo.On("GetByUsername", ctx, "bob").Return(user.User{ID: "u-2", Username: "bob"}, true, nil).Once()
	repo.
		On("UpdateProfile", ctx, "u-2", mock.MatchedBy(func(p user.Profile) bool {
			return p.IsPublic && p.Currency == user.DefaultCurrency && p.FIFAEdition == "21"
		})).
		Return(nil).
		Once()

	updated, err := service.UpdateProfile(ctx, "bob", ProfileChanges{IsPublic: &public})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Profile == nil || !updated.Profile.IsPublic {
		t.Fatalf("expected public profile, got %+v", updated.Profile)
	}
}

func TestUserAdminService_UpdateProfileRejectsUnknownCurrency(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserAdminService(repo)
	currency := user.Currency(9)

	repo.On("GetByUsername", ctx, "bob").Return(user.User{ID: "u-2", Username: "bob"}, true, nil).Once()

	if _, err := service.UpdateProfile(ctx, "bob", ProfileChanges{Currency: &currency}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
