package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"go.opentelemetry.io/otel/attribute"
)

type CreateTeamInput struct {
	OwnerUserID int64
	Name        string
	Picture     *string
	Description string
	MaxPlayers  int
}

type TeamDetails struct {
	Team  team.Team
	Owner user.User
}

type TeamService struct {
	teams team.Repository
	users user.Repository
	now   func() time.Time
}

func NewTeamService(teams team.Repository, users user.Repository) *TeamService {
	return &TeamService{
		teams: teams,
		users: users,
		now:   time.Now,
	}
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create", attribute.Int64("user.id", input.OwnerUserID))
	defer span.End()

	if _, exists, err := s.users.GetByID(ctx, input.OwnerUserID); err != nil {
		return team.Team{}, fmt.Errorf("get owner: %w", err)
	} else if !exists {
		return team.Team{}, fmt.Errorf("%w: user %d not found", ErrNotFound, input.OwnerUserID)
	}

	item := team.Team{
		OwnerUserID: input.OwnerUserID,
		Name:        strings.TrimSpace(input.Name),
		Picture:     input.Picture,
		Description: strings.TrimSpace(input.Description),
		MaxPlayers:  input.MaxPlayers,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.teams.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

func (s *TeamService) GetDetails(ctx context.Context, teamID int64) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetDetails", attribute.Int64("team.id", teamID))
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamDetails{}, err
	}

	owner, exists, err := s.users.GetByID(ctx, item.OwnerUserID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("get team owner: %w", err)
	}
	if !exists {
		return TeamDetails{}, fmt.Errorf("%w: owner of team %d not found", ErrNotFound, teamID)
	}

	return TeamDetails{Team: item, Owner: owner}, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID int64) (team.Team, error) {
	item, exists, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team %d not found", ErrNotFound, teamID)
	}

	return item, nil
}
