package app

import (
	"context"

	"github.com/riskibarqy/champions-tracker/internal/config"
	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/champions-tracker/internal/observability"
)

type repositories struct {
	users         user.Repository
	teams         team.Repository
	championships championship.Repository
	memberships   championship.MembershipRepository
	matches       match.Repository
	guesses       guess.Repository
}

// buildRepositories returns the repository set for the configured driver and
// a close func for the resources it opened.
func buildRepositories(ctx context.Context, cfg config.Config, metrics *observability.Metrics) (repositories, func() error, error) {
	var (
		repos   repositories
		closeFn = func() error { return nil }
	)

	switch cfg.RepositoryDriver {
	case config.RepositoryMemory:
		store := memory.NewStore()
		repos = repositories{
			users:         memory.NewUserRepository(store),
			teams:         memory.NewTeamRepository(store),
			championships: memory.NewChampionshipRepository(store),
			memberships:   memory.NewMembershipRepository(store),
			matches:       memory.NewMatchRepository(store),
			guesses:       memory.NewGuessRepository(store),
		}
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		closeFn = db.Close
		repos = repositories{
			users:         postgres.NewUserRepository(db),
			teams:         postgres.NewTeamRepository(db),
			championships: postgres.NewChampionshipRepository(db),
			memberships:   postgres.NewMembershipRepository(db),
			matches:       postgres.NewMatchRepository(db),
			guesses:       postgres.NewGuessRepository(db),
		}
	}

	if cfg.CacheEnabled {
		opts := cache.Options{TTL: cfg.CacheTTL}
		if metrics != nil {
			opts.Observe = metrics.ObserveCacheLookup
		}
		repos.teams = cache.NewTeamRepository(repos.teams, cache.NewTeamStore(opts))
		repos.championships = cache.NewChampionshipRepository(repos.championships, cache.NewChampionshipStore(opts))
	}

	return repos, closeFn, nil
}
