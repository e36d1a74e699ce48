package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
)

type UserRepository struct {
	mu       sync.RWMutex
	byID     map[string]user.User
	idByName map[string]string
	now      func() time.Time
}

func NewUserRepository(users []user.User) *UserRepository {
	repo := &UserRepository{
		byID:     make(map[string]user.User, len(users)),
		idByName: make(map[string]string, len(users)),
		now:      time.Now,
	}
	for _, item := range users {
		repo.byID[item.ID] = cloneUser(item)
		repo.idByName[item.Username] = item.ID
	}

	return repo
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByName[username]
	if !ok {
		return user.User{}, false, nil
	}

	return cloneUser(r.byID[id]), true, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[userID]
	if !ok {
		return user.User{}, false, nil
	}

	return cloneUser(item), true, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, cloneUser(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Username < out[j].Username
	})

	return out, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, userID string, profile user.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	if profile.LastActivity.IsZero() {
		if item.Profile != nil {
			profile.LastActivity = item.Profile.LastActivity
		} else {
			profile.LastActivity = r.now().UTC()
		}
	}
	item.Profile = &profile
	r.byID[userID] = item

	return nil
}

func (r *UserRepository) TouchLastActivity(_ context.Context, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[userID]
	if !ok || item.Profile == nil {
		return nil
	}
	profile := *item.Profile
	profile.LastActivity = at
	item.Profile = &profile
	r.byID[userID] = item

	return nil
}

func cloneUser(in user.User) user.User {
	if in.Profile != nil {
		profile := *in.Profile
		in.Profile = &profile
	}
	return in
}
