package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	teammock "github.com/riskibarqy/champions-tracker/internal/mocks/domain/team"
	usermock "github.com/riskibarqy/champions-tracker/internal/mocks/domain/user"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_Create_TrimsAndStoresUsingMockery(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	users := usermock.NewRepository(t)
	service := NewTeamService(teams, users)

	users.On("GetByID", mock.Anything, int64(4)).Return(user.User{ID: 4}, true, nil).Once()
	teams.On("Create", mock.Anything, mock.MatchedBy(func(item team.Team) bool {
		return item.OwnerUserID == 4 && item.Name == "Night Owls" && item.Description == "late games" && !item.CreatedAt.IsZero()
	})).Return(team.Team{ID: 11, OwnerUserID: 4, Name: "Night Owls", MaxPlayers: 3}, nil).Once()

	created, err := service.Create(context.Background(), CreateTeamInput{
		OwnerUserID: 4,
		Name:        "  Night Owls ",
		Description: " late games ",
		MaxPlayers:  3,
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("unexpected team id: %d", created.ID)
	}
}

func TestTeamService_Create_RejectionsUsingMockery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   CreateTeamInput
		owner   bool
		wantErr error
	}{
		{name: "unknown owner", input: CreateTeamInput{OwnerUserID: 9, Name: "A", MaxPlayers: 1}, owner: false, wantErr: ErrNotFound},
		{name: "blank name", input: CreateTeamInput{OwnerUserID: 9, Name: "   ", MaxPlayers: 1}, owner: true, wantErr: ErrInvalidInput},
		{name: "no players", input: CreateTeamInput{OwnerUserID: 9, Name: "A", MaxPlayers: 0}, owner: true, wantErr: ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			teams := teammock.NewRepository(t)
			users := usermock.NewRepository(t)
			service := NewTeamService(teams, users)

			users.On("GetByID", mock.Anything, tc.input.OwnerUserID).Return(user.User{ID: tc.input.OwnerUserID}, tc.owner, nil).Once()

			_, err := service.Create(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestTeamService_GetDetails_UsingMockery(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	users := usermock.NewRepository(t)
	service := NewTeamService(teams, users)

	teams.On("GetByID", mock.Anything, int64(2)).Return(team.Team{ID: 2, OwnerUserID: 5, Name: "Reds", MaxPlayers: 1}, true, nil).Once()
	users.On("GetByID", mock.Anything, int64(5)).Return(user.User{ID: 5, Nickname: "captain"}, true, nil).Once()
	teams.On("GetByID", mock.Anything, int64(3)).Return(team.Team{}, false, nil).Once()

	details, err := service.GetDetails(context.Background(), 2)
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if details.Owner.Nickname != "captain" || details.Team.Name != "Reds" {
		t.Fatalf("unexpected details: %+v", details)
	}

	if _, err := service.GetDetails(context.Background(), 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
