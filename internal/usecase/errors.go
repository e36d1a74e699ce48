package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fifa-tracker/internal/platform/i18n"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	ErrUserNotExists  = errors.New("user does not exist")
	ErrPrivateProfile = errors.New("profile is private")
	ErrUnknown        = errors.New("unknown error")
	ErrProfileMissing = errors.New("user has no profile")
)

// userFacingError carries a translatable message for the view layer.
type userFacingError struct {
	kind  error
	msg   i18n.Message
	cause error
}

func (e *userFacingError) Error() string {
	if e.cause != nil {
		return e.msg.String() + ": " + e.cause.Error()
	}
	return e.msg.String()
}

func (e *userFacingError) Is(target error) bool {
	return target == e.kind
}

func (e *userFacingError) Unwrap() error {
	return e.cause
}

func newUserFacingError(kind error, msg i18n.Message, cause error) error {
	return crerr.WithStack(&userFacingError{kind: kind, msg: msg, cause: cause})
}

// UserMessage returns the translatable message attached to err, if any.
func UserMessage(err error) (i18n.Message, bool) {
	var target *userFacingError
	if errors.As(err, &target) {
		return target.msg, true
	}
	return i18n.Message{}, false
}
