package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type CreateMatchInput struct {
	UserID           int64
	ChampionshipID   int64
	HomeTeamID       int64
	AwayTeamID       int64
	PlannedStartTime time.Time
}

type UpdateScoreInput struct {
	UserID         int64
	ChampionshipID int64
	MatchID        int64
	TeamID         int64
	Score          int
}

type UpdateMatchStatusInput struct {
	UserID         int64
	ChampionshipID int64
	MatchID        int64
	Status         match.Status
}

// SettlementRecorder observes completed match settlements.
type SettlementRecorder interface {
	ObserveSettlement(guessesSettled int, totalPayout int64)
}

type MatchService struct {
	championships championship.Repository
	memberships   championship.MembershipRepository
	teams         team.Repository
	matches       match.Repository
	events        *EventEmitter
	logger        *logging.Logger
	recorder      SettlementRecorder
}

func NewMatchService(
	championships championship.Repository,
	memberships championship.MembershipRepository,
	teams team.Repository,
	matches match.Repository,
	events *EventEmitter,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		championships: championships,
		memberships:   memberships,
		teams:         teams,
		matches:       matches,
		events:        events,
		logger:        logger,
	}
}

// WithSettlementRecorder sets the recorder notified after each settlement.
func (s *MatchService) WithSettlementRecorder(r SettlementRecorder) *MatchService {
	s.recorder = r
	return s
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create", attribute.Int64("championship.id", input.ChampionshipID))
	defer span.End()

	item, err := s.getChampionship(ctx, input.ChampionshipID)
	if err != nil {
		return match.Match{}, err
	}
	if !item.OwnedBy(input.UserID) {
		return match.Match{}, fmt.Errorf("%w: only the championship owner can create matches", ErrUnauthorized)
	}

	in := match.NewMatch{
		ChampionshipID:   input.ChampionshipID,
		HomeTeamID:       input.HomeTeamID,
		AwayTeamID:       input.AwayTeamID,
		PlannedStartTime: input.PlannedStartTime.UTC(),
	}
	if err := in.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var homeExists, awayExists, homeMember, awayMember bool
	checks := pool.New().WithContext(ctx)
	checks.Go(func(ctx context.Context) error {
		var err error
		_, homeExists, err = s.teams.GetByID(ctx, in.HomeTeamID)
		if err != nil {
			return fmt.Errorf("get home team: %w", err)
		}
		return nil
	})
	checks.Go(func(ctx context.Context) error {
		var err error
		_, awayExists, err = s.teams.GetByID(ctx, in.AwayTeamID)
		if err != nil {
			return fmt.Errorf("get away team: %w", err)
		}
		return nil
	})
	checks.Go(func(ctx context.Context) error {
		var err error
		homeMember, err = s.memberships.IsMember(ctx, in.ChampionshipID, in.HomeTeamID)
		if err != nil {
			return fmt.Errorf("check home team membership: %w", err)
		}
		return nil
	})
	checks.Go(func(ctx context.Context) error {
		var err error
		awayMember, err = s.memberships.IsMember(ctx, in.ChampionshipID, in.AwayTeamID)
		if err != nil {
			return fmt.Errorf("check away team membership: %w", err)
		}
		return nil
	})
	if err := checks.Wait(); err != nil {
		return match.Match{}, err
	}

	switch {
	case !homeExists:
		return match.Match{}, fmt.Errorf("%w: home team not found", ErrInvalidInput)
	case !awayExists:
		return match.Match{}, fmt.Errorf("%w: away team not found", ErrInvalidInput)
	case !homeMember:
		return match.Match{}, fmt.Errorf("%w: home team is not in this championship", ErrInvalidInput)
	case !awayMember:
		return match.Match{}, fmt.Errorf("%w: away team is not in this championship", ErrInvalidInput)
	}

	created, err := s.matches.Create(ctx, in)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.events.emit(ctx, event.TypeMatchScheduled, created.ID, map[string]any{
		"match_id":           created.ID,
		"championship_id":    created.ChampionshipID,
		"home_team_id":       in.HomeTeamID,
		"away_team_id":       in.AwayTeamID,
		"planned_start_time": created.PlannedStartTime,
	})

	return created, nil
}

func (s *MatchService) ListByChampionship(ctx context.Context, championshipID int64) ([]match.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByChampionship", attribute.Int64("championship.id", championshipID))
	defer span.End()

	if _, err := s.getChampionship(ctx, championshipID); err != nil {
		return nil, err
	}

	items, err := s.matches.ListDetailsByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) UpdateScore(ctx context.Context, input UpdateScoreInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateScore", attribute.Int64("match.id", input.MatchID))
	defer span.End()

	if input.Score < 0 {
		return fmt.Errorf("%w: score must be >= 0", ErrInvalidInput)
	}

	item, m, err := s.getChampionshipMatch(ctx, input.ChampionshipID, input.MatchID)
	if err != nil {
		return err
	}
	if !item.OwnedBy(input.UserID) {
		return fmt.Errorf("%w: only the championship owner can update scores", ErrUnauthorized)
	}
	if m.Completed() {
		return fmt.Errorf("%w: cannot update score of a completed match", ErrInvalidInput)
	}

	score, exists, err := s.matches.GetTeamScore(ctx, m.ID, input.TeamID)
	if err != nil {
		return fmt.Errorf("get team score: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team score not found", ErrNotFound)
	}

	if err := s.matches.UpdateScore(ctx, score.ID, input.Score); err != nil {
		if errors.Is(err, match.ErrAlreadyCompleted) {
			return fmt.Errorf("%w: cannot update score of a completed match", ErrInvalidInput)
		}
		return fmt.Errorf("update team score: %w", err)
	}

	return nil
}

// UpdateStatus moves a match to a new status. Completing a match settles it.
func (s *MatchService) UpdateStatus(ctx context.Context, input UpdateMatchStatusInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateStatus",
		attribute.Int64("match.id", input.MatchID),
		attribute.String("match.status", string(input.Status)),
	)
	defer span.End()

	if !input.Status.Valid() {
		return fmt.Errorf("%w: invalid match status %q", ErrInvalidInput, input.Status)
	}

	item, m, err := s.getChampionshipMatch(ctx, input.ChampionshipID, input.MatchID)
	if err != nil {
		return err
	}
	if m.Completed() {
		return fmt.Errorf("%w: cannot update status of a completed match", ErrInvalidInput)
	}
	if !item.OwnedBy(input.UserID) {
		return fmt.Errorf("%w: only the championship owner can update match status", ErrUnauthorized)
	}

	if input.Status != match.StatusCompleted {
		if err := s.matches.UpdateStatus(ctx, m.ID, input.Status); err != nil {
			if errors.Is(err, match.ErrAlreadyCompleted) {
				return fmt.Errorf("%w: cannot update status of a completed match", ErrInvalidInput)
			}
			return fmt.Errorf("update match status: %w", err)
		}
		s.events.emit(ctx, event.TypeMatchStatusChanged, m.ID, map[string]any{
			"match_id": m.ID,
			"from":     m.Status,
			"to":       input.Status,
		})
		return nil
	}

	return s.complete(ctx, m)
}

func (s *MatchService) complete(ctx context.Context, m match.Match) error {
	settlement, err := s.matches.Complete(ctx, m.ID)
	if err != nil {
		if errors.Is(err, match.ErrAlreadyCompleted) {
			return fmt.Errorf("%w: cannot update status of a completed match", ErrInvalidInput)
		}
		return fmt.Errorf("complete match: %w", err)
	}

	if s.recorder != nil {
		s.recorder.ObserveSettlement(settlement.GuessesSettled, settlement.TotalPayout)
	}
	s.logger.InfoContext(ctx, "match settled",
		"match_id", m.ID,
		"championship_id", m.ChampionshipID,
		"guesses_settled", settlement.GuessesSettled,
		"total_payout", settlement.TotalPayout,
	)

	results := make([]map[string]any, 0, len(settlement.Results))
	for _, r := range settlement.Results {
		results = append(results, map[string]any{"team_id": r.TeamID, "status": r.Status})
	}
	s.events.emit(ctx, event.TypeMatchStatusChanged, m.ID, map[string]any{
		"match_id": m.ID,
		"from":     m.Status,
		"to":       match.StatusCompleted,
	})
	s.events.emit(ctx, event.TypeMatchSettled, m.ID, map[string]any{
		"match_id":        m.ID,
		"championship_id": m.ChampionshipID,
		"results":         results,
		"guesses_settled": settlement.GuessesSettled,
		"total_payout":    settlement.TotalPayout,
	})

	return nil
}

func (s *MatchService) getChampionship(ctx context.Context, championshipID int64) (championship.Championship, error) {
	item, exists, err := s.championships.GetByID(ctx, championshipID)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship %d not found", ErrNotFound, championshipID)
	}

	return item, nil
}

func (s *MatchService) getChampionshipMatch(ctx context.Context, championshipID, matchID int64) (championship.Championship, match.Match, error) {
	item, err := s.getChampionship(ctx, championshipID)
	if err != nil {
		return championship.Championship{}, match.Match{}, err
	}

	m, exists, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return championship.Championship{}, match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists || m.ChampionshipID != championshipID {
		return championship.Championship{}, match.Match{}, fmt.Errorf("%w: match %d not found", ErrNotFound, matchID)
	}

	return item, m, nil
}
