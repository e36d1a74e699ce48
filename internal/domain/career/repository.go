package career

import "context"

// Repository describes career save persistence needs from use cases.
type Repository interface {
	// FirstForUser returns the canonical active career record for owner.
	FirstForUser(ctx context.Context, owner string) (CareerUser, bool, error)
}
