package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fifa-tracker/internal/domain/career"
)

type CareerRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]career.CareerUser
}

// NewCareerRepository keeps records in insertion order; the first record of an
// owner is the canonical one.
func NewCareerRepository(records []career.CareerUser) *CareerRepository {
	byOwner := make(map[string][]career.CareerUser)
	for _, item := range records {
		byOwner[item.Owner] = append(byOwner[item.Owner], item)
	}

	return &CareerRepository{byOwner: byOwner}
}

func (r *CareerRepository) FirstForUser(_ context.Context, owner string) (career.CareerUser, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.byOwner[owner]
	if len(records) == 0 {
		return career.CareerUser{}, false, nil
	}

	return records[0], true, nil
}
