package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/career"
	"github.com/riskibarqy/fifa-tracker/internal/domain/team"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	basecache "github.com/riskibarqy/fifa-tracker/internal/platform/cache"
)

type CareerRepository struct {
	next  career.Repository
	cache *basecache.Store
}

func NewCareerRepository(next career.Repository, cache *basecache.Store) *CareerRepository {
	return &CareerRepository{next: next, cache: cache}
}

func (r *CareerRepository) FirstForUser(ctx context.Context, owner string) (career.CareerUser, bool, error) {
	key := "career:first:" + owner
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.FirstForUser(ctx, owner)
		if err != nil {
			return nil, err
		}
		return cachedCareerUser{value: item, exists: exists}, nil
	})
	if err != nil {
		return career.CareerUser{}, false, err
	}

	cached, _ := v.(cachedCareerUser)
	return cached.value, cached.exists, nil
}

type cachedCareerUser struct {
	value  career.CareerUser
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByIDsForUser(ctx context.Context, owner string, teamIDs []int64) ([]team.Team, error) {
	key := "team:ids:" + owner + ":" + teamIDsKey(teamIDs)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByIDsForUser(ctx, owner, teamIDs)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func teamIDsKey(ids []int64) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

// UserRepository caches single-user lookups. Writes go through and drop every
// cached user so visibility changes apply on the next request.
type UserRepository struct {
	next  user.Repository
	cache *basecache.Store
}

func NewUserRepository(next user.Repository, cache *basecache.Store) *UserRepository {
	return &UserRepository{next: next, cache: cache}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getUser(ctx, "user:name:"+username, func(ctx context.Context) (user.User, bool, error) {
		return r.next.GetByUsername(ctx, username)
	})
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getUser(ctx, "user:id:"+userID, func(ctx context.Context) (user.User, bool, error) {
		return r.next.GetByID(ctx, userID)
	})
}

func (r *UserRepository) getUser(ctx context.Context, key string, load func(context.Context) (user.User, bool, error)) (user.User, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedUser{value: item, exists: exists}, nil
	})
	if err != nil {
		return user.User{}, false, err
	}

	cached, _ := v.(cachedUser)
	out := cached.value
	if out.Profile != nil {
		profile := *out.Profile
		out.Profile = &profile
	}
	return out, cached.exists, nil
}

type cachedUser struct {
	value  user.User
	exists bool
}

// List is never cached: the admin list must show current last activity.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	return r.next.List(ctx)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, profile user.Profile) error {
	if err := r.next.UpdateProfile(ctx, userID, profile); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "user:")
	return nil
}

func (r *UserRepository) TouchLastActivity(ctx context.Context, userID string, at time.Time) error {
	return r.next.TouchLastActivity(ctx, userID, at)
}
