package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type PlaceGuessInput struct {
	UserID  int64
	MatchID int64
	TeamID  int64
	Cost    int64
}

type GuessService struct {
	guesses guess.Repository
	matches match.Repository
	teams   team.Repository
	users   user.Repository
	events  *EventEmitter
	now     func() time.Time
}

func NewGuessService(
	guesses guess.Repository,
	matches match.Repository,
	teams team.Repository,
	users user.Repository,
	events *EventEmitter,
) *GuessService {
	return &GuessService{
		guesses: guesses,
		matches: matches,
		teams:   teams,
		users:   users,
		events:  events,
		now:     time.Now,
	}
}

// Place stakes cost from the caller's balance on a team of a match.
func (s *GuessService) Place(ctx context.Context, input PlaceGuessInput) (guess.Guess, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GuessService.Place",
		attribute.Int64("user.id", input.UserID),
		attribute.Int64("match.id", input.MatchID),
	)
	defer span.End()

	if input.Cost < 1 {
		return guess.Guess{}, fmt.Errorf("%w: guess cost must be >= 1", ErrInvalidInput)
	}

	var (
		m            match.Match
		matchExists  bool
		teamExists   bool
		caller       user.User
		callerExists bool
	)
	loads := pool.New().WithContext(ctx)
	loads.Go(func(ctx context.Context) error {
		var err error
		m, matchExists, err = s.matches.GetByID(ctx, input.MatchID)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
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
		caller, callerExists, err = s.users.GetByID(ctx, input.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	if err := loads.Wait(); err != nil {
		return guess.Guess{}, err
	}

	if !matchExists {
		return guess.Guess{}, fmt.Errorf("%w: match %d not found", ErrNotFound, input.MatchID)
	}
	if !teamExists {
		return guess.Guess{}, fmt.Errorf("%w: team %d not found", ErrNotFound, input.TeamID)
	}
	if !callerExists {
		return guess.Guess{}, fmt.Errorf("%w: user %d not found", ErrNotFound, input.UserID)
	}
	if m.Completed() {
		return guess.Guess{}, fmt.Errorf("%w: match already completed", ErrInvalidInput)
	}

	score, exists, err := s.matches.GetTeamScore(ctx, m.ID, input.TeamID)
	if err != nil {
		return guess.Guess{}, fmt.Errorf("get team score: %w", err)
	}
	if !exists {
		return guess.Guess{}, fmt.Errorf("%w: team score not found", ErrNotFound)
	}

	duplicate, err := s.guesses.ExistsForMatch(ctx, input.UserID, m.ID)
	if err != nil {
		return guess.Guess{}, fmt.Errorf("check existing guess: %w", err)
	}
	if duplicate {
		return guess.Guess{}, fmt.Errorf("%w: %v", ErrInvalidInput, guess.ErrDuplicate)
	}
	if caller.Balance < input.Cost {
		return guess.Guess{}, fmt.Errorf("%w: %v", ErrInvalidInput, guess.ErrInsufficientBalance)
	}

	item := guess.Guess{
		UserID:      input.UserID,
		MatchID:     m.ID,
		TeamScoreID: score.ID,
		Cost:        input.Cost,
		Outcome:     guess.OutcomePending,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return guess.Guess{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	placed, err := s.guesses.Place(ctx, item)
	if err != nil {
		if errors.Is(err, guess.ErrDuplicate) || errors.Is(err, guess.ErrInsufficientBalance) || errors.Is(err, match.ErrAlreadyCompleted) {
			return guess.Guess{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return guess.Guess{}, fmt.Errorf("place guess: %w", err)
	}

	s.events.emit(ctx, event.TypeGuessPlaced, placed.ID, map[string]any{
		"guess_id": placed.ID,
		"user_id":  placed.UserID,
		"match_id": placed.MatchID,
		"team_id":  input.TeamID,
		"cost":     placed.Cost,
	})

	return placed, nil
}

func (s *GuessService) ListByUser(ctx context.Context, userID int64) ([]guess.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GuessService.ListByUser", attribute.Int64("user.id", userID))
	defer span.End()

	items, err := s.guesses.ListDetailsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list guesses: %w", err)
	}

	return items, nil
}
