package user

import (
	"context"
	"time"
)

// Repository describes user and profile persistence needs from use cases.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	GetByID(ctx context.Context, userID string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, userID string, profile Profile) error
	TouchLastActivity(ctx context.Context, userID string, at time.Time) error
}
