package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fifa-tracker/internal/domain/career"
	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/domain/team"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	"github.com/riskibarqy/fifa-tracker/internal/platform/i18n"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
)

// MissingTeamID marks a career team id the career save does not have.
const MissingTeamID int64 = -1

// SessionContextService resolves per-request personalization into the session.
type SessionContextService struct {
	userRepo   user.Repository
	careerRepo career.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
}

func NewSessionContextService(
	userRepo user.Repository,
	careerRepo career.Repository,
	teamRepo team.Repository,
	logger *logging.Logger,
) *SessionContextService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SessionContextService{
		userRepo:   userRepo,
		careerRepo: careerRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (s *SessionContextService) DelSessionKey(sess *session.Session, key session.Key) {
	if sess == nil {
		return
	}
	sess.Delete(key)
}

// SetCurrency fills the session currency from the viewer's profile, falling
// back to the default, then derives the currency symbol from it.
func (s *SessionContextService) SetCurrency(ctx context.Context, req Request) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionContextService.SetCurrency")
	defer span.End()

	sess := req.Session
	if sess == nil {
		return
	}

	if _, ok := sess.Currency(); !ok {
		currency, err := viewerCurrency(req.Viewer)
		if err != nil {
			s.logger.DebugContext(ctx, "using default currency", "reason", err)
			currency = user.DefaultCurrency
		}
		sess.SetCurrency(currency)
	}

	if _, ok := sess.CurrencySymbol(); ok {
		return
	}
	if _, ok := sess.DeriveCurrencySymbol(); ok {
		return
	}

	stored, _ := sess.Currency()
	s.logger.WarnContext(ctx, "stored currency has no symbol, resetting to default", "currency", int(stored))
	sess.SetCurrency(user.DefaultCurrency)
	sess.DeriveCurrencySymbol()
}

func viewerCurrency(viewer *user.User) (user.Currency, error) {
	if viewer == nil {
		return 0, fmt.Errorf("viewer is anonymous")
	}
	if viewer.Profile == nil {
		return 0, fmt.Errorf("viewer %q has no profile", viewer.Username)
	}
	return viewer.Profile.Currency, nil
}

// GetCurrentUser resolves whose data the request shows. It is not cached.
func (s *SessionContextService) GetCurrentUser(ctx context.Context, req Request) (CurrentUser, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionContextService.GetCurrentUser")
	defer span.End()

	if req.HasOwner {
		current, err := s.resolveOwner(ctx, req.Owner)
		return current, failSpan(span, err)
	}
	if req.Viewer != nil {
		return Self(req.Viewer), nil
	}

	return GuestUser(), nil
}

func (s *SessionContextService) resolveOwner(ctx context.Context, owner string) (CurrentUser, error) {
	found, exists, err := s.userRepo.GetByUsername(ctx, owner)
	if err != nil {
		return CurrentUser{}, newUserFacingError(ErrUnknown, i18n.New(i18n.MsgUnknownError), crerr.Wrapf(err, "get owner %q", owner))
	}
	if !exists {
		return CurrentUser{}, newUserFacingError(ErrUserNotExists, i18n.New(i18n.MsgUserNotExists, owner), nil)
	}
	if found.Profile == nil {
		return CurrentUser{}, newUserFacingError(ErrUnknown, i18n.New(i18n.MsgUnknownError), crerr.Wrapf(ErrProfileMissing, "owner %q", owner))
	}
	if !found.Profile.IsPublic {
		return CurrentUser{}, newUserFacingError(ErrPrivateProfile, i18n.New(i18n.MsgPrivateProfile, owner), nil)
	}

	return PublicOwner(owner), nil
}

// GetFIFAEdition returns the game edition that scopes data queries. Any
// failure yields user.DefaultFIFAEdition.
func (s *SessionContextService) GetFIFAEdition(ctx context.Context, req Request, current *CurrentUser) int {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionContextService.GetFIFAEdition", currentUserAttrs(current)...)
	defer span.End()

	edition, err := s.fifaEdition(ctx, req, current)
	if err != nil {
		s.logger.DebugContext(ctx, "using default fifa edition", "reason", err)
		return user.DefaultFIFAEdition
	}

	return edition
}

func (s *SessionContextService) fifaEdition(ctx context.Context, req Request, current *CurrentUser) (int, error) {
	if current == nil {
		resolved, err := s.GetCurrentUser(ctx, req)
		if err != nil {
			return 0, err
		}
		current = &resolved
	}

	target := current.User
	if current.Kind != CurrentUserSelf || target == nil {
		username := current.Identifier()
		found, exists, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return 0, fmt.Errorf("get user %q: %w", username, err)
		}
		if !exists {
			return 0, fmt.Errorf("%w: user=%s", ErrNotFound, username)
		}
		target = &found
	}

	if target.Profile == nil {
		return 0, fmt.Errorf("%w: user=%s", ErrProfileMissing, target.Username)
	}

	return target.Profile.Edition()
}

// GetCareerUser returns the career club and national team of current, read
// through the session. A cached value is never refreshed.
func (s *SessionContextService) GetCareerUser(ctx context.Context, req Request, current *CurrentUser) (session.CareerTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionContextService.GetCareerUser", currentUserAttrs(current)...)
	defer span.End()

	if req.Session != nil {
		if cached, ok := req.Session.CareerUser(); ok {
			return cached, nil
		}
	}

	owner := user.GuestUsername
	if current != nil {
		owner = current.Identifier()
	}

	record, exists, err := s.careerRepo.FirstForUser(ctx, owner)
	if err != nil {
		return session.CareerTeams{}, failSpan(span, fmt.Errorf("get career user for %q: %w", owner, err))
	}

	clubTeamID, nationalTeamID := MissingTeamID, MissingTeamID
	if exists {
		if record.ClubTeamID != nil {
			clubTeamID = *record.ClubTeamID
		}
		if record.NationalTeamID != nil {
			nationalTeamID = *record.NationalTeamID
		}
	}

	teams, err := s.teamRepo.ListByIDsForUser(ctx, owner, []int64{clubTeamID, nationalTeamID})
	if err != nil {
		return session.CareerTeams{}, failSpan(span, fmt.Errorf("list career teams for %q: %w", owner, err))
	}

	out := session.CareerTeams{
		ClubTeamID:     clubTeamID,
		NationalTeamID: nationalTeamID,
	}
	for _, item := range teams {
		switch item.TeamID {
		case clubTeamID:
			out.ClubTeamName = item.TeamName
		case nationalTeamID:
			out.NationalTeamName = item.TeamName
		}
	}

	if req.Session != nil {
		req.Session.SetCareerUser(out)
	}

	return out, nil
}
