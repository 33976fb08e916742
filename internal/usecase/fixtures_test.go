package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/champions-tracker/internal/platform/id"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("%w: password mismatch", ErrUnauthorized)
	}
	return nil
}

type staticTokenIssuer struct{}

func (staticTokenIssuer) IssueAccessToken(_ context.Context, userID int64) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type settlementSpy struct {
	calls   int
	guesses int
	payout  int64
}

func (s *settlementSpy) ObserveSettlement(guessesSettled int, totalPayout int64) {
	s.calls++
	s.guesses += guessesSettled
	s.payout += totalPayout
}

// testEnv wires every service over one in-memory store.
type testEnv struct {
	publisher     *recordingPublisher
	users         *UserService
	teams         *TeamService
	championships *ChampionshipService
	matches       *MatchService
	guesses       *GuessService
	settlements   *settlementSpy

	matchRepo    *memory.MatchRepository
	guessRepo    *memory.GuessRepository
	teamRepo     *memory.TeamRepository
	userRepo     *memory.UserRepository
	eventEmitter *EventEmitter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	teamRepo := memory.NewTeamRepository(store)
	championshipRepo := memory.NewChampionshipRepository(store)
	membershipRepo := memory.NewMembershipRepository(store)
	matchRepo := memory.NewMatchRepository(store)
	guessRepo := memory.NewGuessRepository(store)

	publisher := &recordingPublisher{}
	logger := logging.NewNop()
	emitter := NewEventEmitter(publisher, &idgen.SequenceGenerator{Prefix: "evt-"}, logger)
	spy := &settlementSpy{}

	return &testEnv{
		publisher:     publisher,
		users:         NewUserService(userRepo, guessRepo, plainHasher{}, staticTokenIssuer{}, emitter, 1000),
		teams:         NewTeamService(teamRepo, userRepo),
		championships: NewChampionshipService(championshipRepo, membershipRepo, teamRepo, userRepo, matchRepo, emitter),
		matches:       NewMatchService(championshipRepo, membershipRepo, teamRepo, matchRepo, emitter, logger).WithSettlementRecorder(spy),
		guesses:       NewGuessService(guessRepo, matchRepo, teamRepo, userRepo, emitter),
		settlements:   spy,
		matchRepo:     matchRepo,
		guessRepo:     guessRepo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		eventEmitter:  emitter,
	}
}

func (e *testEnv) mustRegister(t *testing.T, nickname string) int64 {
	t.Helper()

	created, err := e.users.Register(t.Context(), RegisterUserInput{
		Email:    nickname + "@example.com",
		Password: "password123",
		Name:     "Player " + nickname,
		Nickname: nickname,
	})
	if err != nil {
		t.Fatalf("register %s: %v", nickname, err)
	}
	return created.ID
}

func (e *testEnv) mustTeam(t *testing.T, ownerID int64, name string) int64 {
	t.Helper()

	created, err := e.teams.Create(t.Context(), CreateTeamInput{OwnerUserID: ownerID, Name: name, MaxPlayers: 5})
	if err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return created.ID
}

// mustMatch creates a championship owned by ownerID with two member teams
// and schedules a match between them.
func (e *testEnv) mustMatch(t *testing.T, ownerID int64) (championshipID, matchID, homeID, awayID int64) {
	t.Helper()
	ctx := t.Context()

	homeID = e.mustTeam(t, ownerID, "Home Heroes")
	awayID = e.mustTeam(t, ownerID, "Away Aces")

	created, err := e.championships.Create(ctx, CreateChampionshipInput{
		OwnerUserID: ownerID,
		Name:        "Spring Open",
		Description: "Open bracket",
		Type:        championship.TypeVirtual,
		Game:        "Chess",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}
	for _, teamID := range []int64{homeID, awayID} {
		if err := e.championships.AddTeam(ctx, AddTeamInput{UserID: ownerID, ChampionshipID: created.ID, TeamID: teamID}); err != nil {
			t.Fatalf("add team %d: %v", teamID, err)
		}
	}

	m, err := e.matches.Create(ctx, CreateMatchInput{
		UserID:           ownerID,
		ChampionshipID:   created.ID,
		HomeTeamID:       homeID,
		AwayTeamID:       awayID,
		PlannedStartTime: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	return created.ID, m.ID, homeID, awayID
}

func (e *testEnv) balance(t *testing.T, userID int64) int64 {
	t.Helper()

	profile, err := e.users.GetProfile(t.Context(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	return profile.User.Balance
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

func itoa(v int64) string {
	return fmt.Sprintf("%d", v)
}
