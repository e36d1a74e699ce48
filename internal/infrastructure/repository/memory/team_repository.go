package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fifa-tracker/internal/domain/team"
)

type TeamRepository struct {
	mu           sync.RWMutex
	teamsByOwner map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByOwner := make(map[string][]team.Team)
	for _, item := range teams {
		teamsByOwner[item.Owner] = append(teamsByOwner[item.Owner], item)
	}

	return &TeamRepository{teamsByOwner: teamsByOwner}
}

func (r *TeamRepository) ListByIDsForUser(_ context.Context, owner string, teamIDs []int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByOwner[owner]
	out := make([]team.Team, 0, len(teamIDs))
	for _, item := range teams {
		if slices.Contains(teamIDs, item.TeamID) {
			out = append(out, item)
		}
	}

	return out, nil
}
