package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	basecache "github.com/riskibarqy/champions-tracker/internal/platform/cache"
)

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store[cachedTeamByID]
}

func NewTeamRepository(next team.Repository, cache *basecache.Store[cachedTeamByID]) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

// NewTeamStore builds the store backing TeamRepository.
func NewTeamStore(opts Options) *basecache.Store[cachedTeamByID] {
	return newStore[cachedTeamByID]("team", opts)
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, t)
	if err != nil {
		return team.Team{}, err
	}
	r.cache.Set(ctx, teamKey(created.ID), cachedTeamByID{value: created, exists: true})
	return created, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	cached, err := r.cache.GetOrLoad(ctx, teamKey(teamID), func(ctx context.Context) (cachedTeamByID, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return cachedTeamByID{}, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	return cached.value, cached.exists, nil
}

func teamKey(teamID int64) string {
	return "team:id:" + strconv.FormatInt(teamID, 10)
}

type cachedChampionshipByID struct {
	value  championship.Championship
	exists bool
}

type ChampionshipRepository struct {
	next  championship.Repository
	cache *basecache.Store[cachedChampionshipByID]
}

func NewChampionshipRepository(next championship.Repository, cache *basecache.Store[cachedChampionshipByID]) *ChampionshipRepository {
	return &ChampionshipRepository{next: next, cache: cache}
}

func NewChampionshipStore(opts Options) *basecache.Store[cachedChampionshipByID] {
	return newStore[cachedChampionshipByID]("championship", opts)
}

func (r *ChampionshipRepository) Create(ctx context.Context, c championship.Championship) (championship.Championship, error) {
	created, err := r.next.Create(ctx, c)
	if err != nil {
		return championship.Championship{}, err
	}
	r.cache.Set(ctx, championshipKey(created.ID), cachedChampionshipByID{value: created, exists: true})
	return created, nil
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, championshipID int64) (championship.Championship, bool, error) {
	cached, err := r.cache.GetOrLoad(ctx, championshipKey(championshipID), func(ctx context.Context) (cachedChampionshipByID, error) {
		item, exists, err := r.next.GetByID(ctx, championshipID)
		if err != nil {
			return cachedChampionshipByID{}, err
		}
		return cachedChampionshipByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return championship.Championship{}, false, err
	}

	return cached.value, cached.exists, nil
}

// List is not cached: pages shift every time a championship is created.
func (r *ChampionshipRepository) List(ctx context.Context, filter championship.ListFilter) ([]championship.Championship, error) {
	return r.next.List(ctx, filter)
}

func championshipKey(championshipID int64) string {
	return "championship:id:" + strconv.FormatInt(championshipID, 10)
}
