package memory

import (
	"context"

	"github.com/riskibarqy/champions-tracker/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTeamID++
	t.ID = r.store.nextTeamID
	t.Picture = copyString(t.Picture)
	r.store.teams[t.ID] = t

	return t, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	return item, ok, nil
}
