package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByIDsForUser(ctx context.Context, owner string, teamIDs []int64) ([]Team, error)
}
