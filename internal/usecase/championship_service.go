package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type CreateChampionshipInput struct {
	OwnerUserID int64
	Name        string
	Picture     *string
	Description string
	Type        championship.Type
	Game        string
}

type AddTeamInput struct {
	UserID         int64
	ChampionshipID int64
	TeamID         int64
}

type ChampionshipDetails struct {
	Summary championship.Summary
	Owner   user.User
}

type ChampionshipService struct {
	championships championship.Repository
	memberships   championship.MembershipRepository
	teams         team.Repository
	users         user.Repository
	matches       match.Repository
	events        *EventEmitter
	now           func() time.Time
}

func NewChampionshipService(
	championships championship.Repository,
	memberships championship.MembershipRepository,
	teams team.Repository,
	users user.Repository,
	matches match.Repository,
	events *EventEmitter,
) *ChampionshipService {
	return &ChampionshipService{
		championships: championships,
		memberships:   memberships,
		teams:         teams,
		users:         users,
		matches:       matches,
		events:        events,
		now:           time.Now,
	}
}

func (s *ChampionshipService) Create(ctx context.Context, input CreateChampionshipInput) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Create", attribute.Int64("user.id", input.OwnerUserID))
	defer span.End()

	if _, exists, err := s.users.GetByID(ctx, input.OwnerUserID); err != nil {
		return championship.Championship{}, fmt.Errorf("get owner: %w", err)
	} else if !exists {
		return championship.Championship{}, fmt.Errorf("%w: user %d not found", ErrNotFound, input.OwnerUserID)
	}

	item := championship.Championship{
		OwnerUserID: input.OwnerUserID,
		Name:        strings.TrimSpace(input.Name),
		Picture:     input.Picture,
		Description: strings.TrimSpace(input.Description),
		Type:        input.Type,
		Game:        strings.TrimSpace(input.Game),
		Status:      championship.StatusActive,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return championship.Championship{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.championships.Create(ctx, item)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("create championship: %w", err)
	}

	s.events.emit(ctx, event.TypeChampionshipOpened, created.ID, map[string]any{
		"championship_id": created.ID,
		"owner_user_id":   created.OwnerUserID,
		"type":            created.Type,
	})

	return created, nil
}

func (s *ChampionshipService) Get(ctx context.Context, championshipID int64) (ChampionshipDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Get", attribute.Int64("championship.id", championshipID))
	defer span.End()

	item, err := s.getChampionship(ctx, championshipID)
	if err != nil {
		return ChampionshipDetails{}, err
	}

	var (
		counts      map[int64]int
		owner       user.User
		ownerExists bool
	)
	loads := pool.New().WithContext(ctx)
	loads.Go(func(ctx context.Context) error {
		var err error
		counts, err = s.memberships.CountTeams(ctx, []int64{item.ID})
		if err != nil {
			return fmt.Errorf("count championship teams: %w", err)
		}
		return nil
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		owner, ownerExists, err = s.users.GetByID(ctx, item.OwnerUserID)
		if err != nil {
			return fmt.Errorf("get championship owner: %w", err)
		}
		return nil
	})
	if err := loads.Wait(); err != nil {
		return ChampionshipDetails{}, err
	}
	if !ownerExists {
		return ChampionshipDetails{}, fmt.Errorf("%w: owner of championship %d not found", ErrNotFound, championshipID)
	}

	return ChampionshipDetails{
		Summary: championship.Summary{Championship: item, TeamsAmount: counts[item.ID]},
		Owner:   owner,
	}, nil
}

func (s *ChampionshipService) List(ctx context.Context, filter championship.ListFilter) ([]championship.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.List")
	defer span.End()

	filter = filter.Normalize()
	items, err := s.championships.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}
	if len(items) == 0 {
		return []championship.Summary{}, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	counts, err := s.memberships.CountTeams(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count championship teams: %w", err)
	}

	out := make([]championship.Summary, 0, len(items))
	for _, item := range items {
		out = append(out, championship.Summary{Championship: item, TeamsAmount: counts[item.ID]})
	}

	return out, nil
}

func (s *ChampionshipService) AddTeam(ctx context.Context, input AddTeamInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.AddTeam",
		attribute.Int64("championship.id", input.ChampionshipID),
		attribute.Int64("team.id", input.TeamID),
	)
	defer span.End()

	var (
		item          championship.Championship
		itemExists    bool
		teamExists    bool
		alreadyInside bool
	)
	loads := pool.New().WithContext(ctx)
	loads.Go(func(ctx context.Context) error {
		var err error
		item, itemExists, err = s.championships.GetByID(ctx, input.ChampionshipID)
		if err != nil {
			return fmt.Errorf("get championship: %w", err)
		}
		return nil
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		_, teamExists, err = s.teams.GetByID(ctx, input.TeamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		return nil
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		alreadyInside, err = s.memberships.IsMember(ctx, input.ChampionshipID, input.TeamID)
		if err != nil {
			return fmt.Errorf("check championship membership: %w", err)
		}
		return nil
	})
	if err := loads.Wait(); err != nil {
		return err
	}

	if !itemExists {
		return fmt.Errorf("%w: championship %d not found", ErrNotFound, input.ChampionshipID)
	}
	if !teamExists {
		return fmt.Errorf("%w: team %d not found", ErrNotFound, input.TeamID)
	}
	if !item.OwnedBy(input.UserID) {
		return fmt.Errorf("%w: only the championship owner can add teams", ErrUnauthorized)
	}
	if alreadyInside {
		return fmt.Errorf("%w: %v", ErrConflict, championship.ErrTeamAlreadyMember)
	}

	if err := s.memberships.AddTeam(ctx, input.ChampionshipID, input.TeamID); err != nil {
		if errors.Is(err, championship.ErrTeamAlreadyMember) {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return fmt.Errorf("add team to championship: %w", err)
	}

	s.events.emit(ctx, event.TypeTeamJoined, input.ChampionshipID, map[string]any{
		"championship_id": input.ChampionshipID,
		"team_id":         input.TeamID,
	})

	return nil
}

func (s *ChampionshipService) ListTeams(ctx context.Context, championshipID int64) ([]championship.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.ListTeams", attribute.Int64("championship.id", championshipID))
	defer span.End()

	if _, err := s.getChampionship(ctx, championshipID); err != nil {
		return nil, err
	}

	items, err := s.memberships.ListEntries(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list championship teams: %w", err)
	}

	return items, nil
}

func (s *ChampionshipService) Standings(ctx context.Context, championshipID int64) ([]championship.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Standings", attribute.Int64("championship.id", championshipID))
	defer span.End()

	if _, err := s.getChampionship(ctx, championshipID); err != nil {
		return nil, err
	}

	var (
		entries []championship.Entry
		results []match.TeamResult
	)
	loads := pool.New().WithContext(ctx)
	loads.Go(func(ctx context.Context) error {
		var err error
		entries, err = s.memberships.ListEntries(ctx, championshipID)
		if err != nil {
			return fmt.Errorf("list championship teams: %w", err)
		}
		return nil
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		results, err = s.matches.ListResultsByChampionship(ctx, championshipID)
		if err != nil {
			return fmt.Errorf("list championship results: %w", err)
		}
		return nil
	})
	if err := loads.Wait(); err != nil {
		return nil, err
	}

	return championship.BuildStandings(entries, results), nil
}

func (s *ChampionshipService) getChampionship(ctx context.Context, championshipID int64) (championship.Championship, error) {
	item, exists, err := s.championships.GetByID(ctx, championshipID)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship %d not found", ErrNotFound, championshipID)
	}

	return item, nil
}
