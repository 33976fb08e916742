package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	championshipmock "github.com/riskibarqy/champions-tracker/internal/mocks/domain/championship"
	matchmock "github.com/riskibarqy/champions-tracker/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/champions-tracker/internal/mocks/domain/team"
	usermock "github.com/riskibarqy/champions-tracker/internal/mocks/domain/user"
	"github.com/stretchr/testify/mock"
)

func teamWithID(id int64) team.Team {
	return team.Team{ID: id, OwnerUserID: 1, Name: "Team", MaxPlayers: 5}
}

type championshipServiceMocks struct {
	championships *championshipmock.Repository
	memberships   *championshipmock.MembershipRepository
	teams         *teammock.Repository
	users         *usermock.Repository
	matches       *matchmock.Repository
}

func newChampionshipServiceWithMocks(t *testing.T) (*ChampionshipService, championshipServiceMocks) {
	m := championshipServiceMocks{
		championships: championshipmock.NewRepository(t),
		memberships:   championshipmock.NewMembershipRepository(t),
		teams:         teammock.NewRepository(t),
		users:         usermock.NewRepository(t),
		matches:       matchmock.NewRepository(t),
	}
	service := NewChampionshipService(m.championships, m.memberships, m.teams, m.users, m.matches, nil)
	return service, m
}

func TestChampionshipService_AddTeam_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	service, m := newChampionshipServiceWithMocks(t)

	m.championships.On("GetByID", mock.Anything, int64(3)).
		Return(championship.Championship{ID: 3, OwnerUserID: 1}, true, nil).
		Once()
	m.teams.On("GetByID", mock.Anything, int64(7)).Return(teamWithID(7), true, nil).Once()
	m.memberships.On("IsMember", mock.Anything, int64(3), int64(7)).Return(false, nil).Once()
	m.memberships.On("AddTeam", mock.Anything, int64(3), int64(7)).Return(nil).Once()

	err := service.AddTeam(context.Background(), AddTeamInput{UserID: 1, ChampionshipID: 3, TeamID: 7})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
}

func TestChampionshipService_AddTeam_RejectionsUsingMockery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		userID       int64
		champFound   bool
		teamFound    bool
		alreadyIn    bool
		addErr       error
		expectInsert bool
		want         error
	}{
		{name: "championship missing", userID: 1, teamFound: true, want: ErrNotFound},
		{name: "team missing", userID: 1, champFound: true, want: ErrNotFound},
		{name: "not owner", userID: 2, champFound: true, teamFound: true, want: ErrUnauthorized},
		{name: "already member", userID: 1, champFound: true, teamFound: true, alreadyIn: true, want: ErrConflict},
		{
			name:         "lost insert race",
			userID:       1,
			champFound:   true,
			teamFound:    true,
			addErr:       championship.ErrTeamAlreadyMember,
			expectInsert: true,
			want:         ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, m := newChampionshipServiceWithMocks(t)
			m.championships.On("GetByID", mock.Anything, int64(3)).
				Return(championship.Championship{ID: 3, OwnerUserID: 1}, tc.champFound, nil).
				Once()
			m.teams.On("GetByID", mock.Anything, int64(7)).Return(teamWithID(7), tc.teamFound, nil).Once()
			m.memberships.On("IsMember", mock.Anything, int64(3), int64(7)).Return(tc.alreadyIn, nil).Once()
			if tc.expectInsert {
				m.memberships.On("AddTeam", mock.Anything, int64(3), int64(7)).Return(tc.addErr).Once()
			}

			err := service.AddTeam(context.Background(), AddTeamInput{UserID: tc.userID, ChampionshipID: 3, TeamID: 7})
			assertErrorIs(t, err, tc.want)
		})
	}
}

func TestChampionshipService_List_AttachesTeamCountsUsingMockery(t *testing.T) {
	t.Parallel()

	service, m := newChampionshipServiceWithMocks(t)
	items := []championship.Championship{{ID: 4, Name: "B"}, {ID: 2, Name: "A"}}

	m.championships.
		On("List", mock.Anything, championship.ListFilter{Query: "cup", Page: 0, PageSize: championship.DefaultPageSize}).
		Return(items, nil).
		Once()
	m.memberships.On("CountTeams", mock.Anything, []int64{4, 2}).Return(map[int64]int{4: 8}, nil).Once()

	got, err := service.List(context.Background(), championship.ListFilter{Query: "cup"})
	if err != nil {
		t.Fatalf("list championships: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 championships, got %d", len(got))
	}
	if got[0].TeamsAmount != 8 || got[1].TeamsAmount != 0 {
		t.Fatalf("unexpected team counts: %d/%d", got[0].TeamsAmount, got[1].TeamsAmount)
	}
}

func TestChampionshipService_List_EmptySkipsCountsUsingMockery(t *testing.T) {
	t.Parallel()

	service, m := newChampionshipServiceWithMocks(t)
	m.championships.On("List", mock.Anything, mock.Anything).Return(nil, nil).Once()

	got, err := service.List(context.Background(), championship.ListFilter{})
	if err != nil {
		t.Fatalf("list championships: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
