package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTeamRepository struct {
	team.Repository
	gets int
}

func (r *countingTeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	r.gets++
	return r.Repository.GetByID(ctx, teamID)
}

func TestTeamRepositoryCachesLookups(t *testing.T) {
	ctx := context.Background()
	next := &countingTeamRepository{Repository: memory.NewTeamRepository(memory.NewStore())}

	observed := map[bool]int{}
	repo := NewTeamRepository(next, NewTeamStore(Options{
		TTL: time.Minute,
		Observe: func(name string, hit bool) {
			assert.Equal(t, "team", name)
			observed[hit]++
		},
	}))

	created, err := next.Create(ctx, team.Team{OwnerUserID: 1, Name: "Reds", MaxPlayers: 5})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, exists, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, exists)
		assert.Equal(t, "Reds", got.Name)
	}

	assert.Equal(t, 1, next.gets)
	assert.Equal(t, 2, observed[true])
	assert.Equal(t, 1, observed[false])
}

func TestTeamRepositoryCachesMissingTeam(t *testing.T) {
	ctx := context.Background()
	next := &countingTeamRepository{Repository: memory.NewTeamRepository(memory.NewStore())}
	repo := NewTeamRepository(next, NewTeamStore(Options{TTL: time.Minute}))

	for i := 0; i < 2; i++ {
		_, exists, err := repo.GetByID(ctx, 404)
		require.NoError(t, err)
		assert.False(t, exists)
	}
	assert.Equal(t, 1, next.gets)
}

func TestChampionshipRepositoryCreatePrimesCache(t *testing.T) {
	ctx := context.Background()
	store := NewChampionshipStore(Options{TTL: time.Minute})
	repo := NewChampionshipRepository(memory.NewChampionshipRepository(memory.NewStore()), store)

	created, err := repo.Create(ctx, championship.Championship{
		OwnerUserID: 1,
		Name:        "Summer Cup",
		Type:        championship.TypeVirtual,
		Game:        "chess",
		Status:      championship.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	got, exists, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Summer Cup", got.Name)
}
