package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
)

type ChampionshipRepository struct {
	store *Store
}

func NewChampionshipRepository(store *Store) *ChampionshipRepository {
	return &ChampionshipRepository{store: store}
}

func (r *ChampionshipRepository) Create(_ context.Context, c championship.Championship) (championship.Championship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextChampionshipID++
	c.ID = r.store.nextChampionshipID
	c.Picture = copyString(c.Picture)
	r.store.championships[c.ID] = c

	return c, nil
}

func (r *ChampionshipRepository) GetByID(_ context.Context, championshipID int64) (championship.Championship, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.championships[championshipID]
	return item, ok, nil
}

func (r *ChampionshipRepository) List(_ context.Context, filter championship.ListFilter) ([]championship.Championship, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	filter = filter.Normalize()
	query := strings.ToLower(filter.Query)

	items := make([]championship.Championship, 0, len(r.store.championships))
	for _, item := range r.store.championships {
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})

	offset := filter.Offset()
	if offset >= len(items) {
		return []championship.Championship{}, nil
	}
	end := offset + filter.PageSize
	if end > len(items) {
		end = len(items)
	}

	return append([]championship.Championship(nil), items[offset:end]...), nil
}

type MembershipRepository struct {
	store *Store
}

func NewMembershipRepository(store *Store) *MembershipRepository {
	return &MembershipRepository{store: store}
}

func (r *MembershipRepository) AddTeam(_ context.Context, championshipID, teamID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.entry(championshipID, teamID) != nil {
		return championship.ErrTeamAlreadyMember
	}

	t := r.store.teams[teamID]
	r.store.memberships[championshipID] = append(r.store.memberships[championshipID], &championship.Entry{
		ChampionshipID: championshipID,
		TeamID:         teamID,
		TeamName:       t.Name,
		TeamPicture:    copyString(t.Picture),
	})

	return nil
}

func (r *MembershipRepository) IsMember(_ context.Context, championshipID, teamID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.entry(championshipID, teamID) != nil, nil
}

func (r *MembershipRepository) ListEntries(_ context.Context, championshipID int64) ([]championship.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := r.store.memberships[championshipID]
	out := make([]championship.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}

	return out, nil
}

func (r *MembershipRepository) CountTeams(_ context.Context, championshipIDs []int64) (map[int64]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make(map[int64]int, len(championshipIDs))
	for _, id := range championshipIDs {
		out[id] = len(r.store.memberships[id])
	}

	return out, nil
}
