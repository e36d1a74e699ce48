package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
)

// ProfileService lets a viewer manage their own profile.
type ProfileService struct {
	userRepo user.Repository
	logger   *logging.Logger
	now      func() time.Time
}

func NewProfileService(userRepo user.Repository, logger *logging.Logger) *ProfileService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ProfileService{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// UpdateOwn saves the viewer's profile and drops the session values derived
// from it so the next SetCurrency reloads them.
func (s *ProfileService) UpdateOwn(ctx context.Context, viewer *user.User, sess *session.Session, changes ProfileChanges) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.UpdateOwn")
	defer span.End()

	if viewer == nil {
		return user.User{}, fmt.Errorf("%w: login required", ErrUnauthorized)
	}

	updated, err := saveProfile(ctx, s.userRepo, *viewer, changes)
	if err != nil {
		return user.User{}, err
	}

	if sess != nil && changes.Currency != nil {
		sess.Delete(session.KeyCurrency)
		sess.Delete(session.KeyCurrencySymbol)
	}

	return updated, nil
}

// TouchActivity records that viewer made a request.
func (s *ProfileService) TouchActivity(ctx context.Context, viewer *user.User) {
	if viewer == nil || viewer.Profile == nil {
		return
	}
	if err := s.userRepo.TouchLastActivity(ctx, viewer.ID, s.now().UTC()); err != nil {
		s.logger.WarnContext(ctx, "touch last activity failed", "user_id", viewer.ID, "error", err)
	}
}
