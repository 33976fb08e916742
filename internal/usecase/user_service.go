package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const neverGuessed = "Never"

type RegisterUserInput struct {
	Email    string
	Password string
	Name     string
	Nickname string
	Picture  *string
}

type UpdateUserInput struct {
	UserID   int64
	Changes  user.Changes
	Password string
}

type ChangePasswordInput struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// Profile is the caller's own account view with guess statistics.
type Profile struct {
	User  user.User
	Stats guess.Stats
}

type UserService struct {
	users          user.Repository
	guesses        guess.Repository
	hasher         PasswordHasher
	tokens         TokenIssuer
	events         *EventEmitter
	initialBalance int64
	now            func() time.Time
}

func NewUserService(
	users user.Repository,
	guesses guess.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	events *EventEmitter,
	initialBalance int64,
) *UserService {
	return &UserService{
		users:          users,
		guesses:        guesses,
		hasher:         hasher,
		tokens:         tokens,
		events:         events,
		initialBalance: initialBalance,
		now:            time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Register")
	defer span.End()

	email := normalizeEmail(input.Email)
	nickname := strings.TrimSpace(input.Nickname)
	if email == "" || nickname == "" || input.Password == "" {
		return user.User{}, fmt.Errorf("%w: email, nickname and password are required", ErrInvalidInput)
	}

	var emailTaken, nicknameTaken bool
	lookups := pool.New().WithContext(ctx)
	lookups.Go(func(ctx context.Context) error {
		_, exists, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("get user by email: %w", err)
		}
		emailTaken = exists
		return nil
	})
	lookups.Go(func(ctx context.Context) error {
		_, exists, err := s.users.GetByNickname(ctx, nickname)
		if err != nil {
			return fmt.Errorf("get user by nickname: %w", err)
		}
		nicknameTaken = exists
		return nil
	})
	if err := lookups.Wait(); err != nil {
		return user.User{}, err
	}
	if emailTaken {
		return user.User{}, fmt.Errorf("%w: %v", ErrConflict, user.ErrEmailTaken)
	}
	if nicknameTaken {
		return user.User{}, fmt.Errorf("%w: %v", ErrConflict, user.ErrNicknameTaken)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	item := user.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		Nickname:     nickname,
		Picture:      input.Picture,
		Balance:      s.initialBalance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.users.Create(ctx, item)
	if err != nil {
		return user.User{}, mapUserWriteError("create user", err)
	}

	s.events.emit(ctx, event.TypeUserRegistered, created.ID, map[string]any{
		"user_id":  created.ID,
		"nickname": created.Nickname,
	})

	return created, nil
}

// Login checks credentials and returns a signed access token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Login")
	defer span.End()

	item, exists, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(item.PasswordHash, password); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.tokens.IssueAccessToken(ctx, item.ID)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return token, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.GetProfile", attribute.Int64("user.id", userID))
	defer span.End()

	var (
		item   user.User
		exists bool
		stats  guess.Stats
	)
	loads := pool.New().WithContext(ctx)
	loads.Go(func(ctx context.Context) error {
		var err error
		item, exists, err = s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		stats, err = s.guesses.StatsByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("get guess stats: %w", err)
		}
		return nil
	})
	if err := loads.Wait(); err != nil {
		return Profile{}, err
	}
	if !exists {
		return Profile{}, fmt.Errorf("%w: user %d not found", ErrNotFound, userID)
	}
	if stats.LastTeamGuessed == "" {
		stats.LastTeamGuessed = neverGuessed
	}

	return Profile{User: item, Stats: stats}, nil
}

func (s *UserService) GetPublicProfile(ctx context.Context, userID int64) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.GetPublicProfile", attribute.Int64("user.id", userID))
	defer span.End()

	return s.getUser(ctx, userID)
}

func (s *UserService) Update(ctx context.Context, input UpdateUserInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Update", attribute.Int64("user.id", input.UserID))
	defer span.End()

	current, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(current.PasswordHash, input.Password); err != nil {
		return fmt.Errorf("%w: wrong password", ErrUnauthorized)
	}

	changes := input.Changes
	if changes.Email != nil {
		email := normalizeEmail(*changes.Email)
		changes.Email = &email
	}
	if changes.Nickname != nil {
		nickname := strings.TrimSpace(*changes.Nickname)
		changes.Nickname = &nickname
	}
	if changes.Empty() {
		return nil
	}

	var emailTaken, nicknameTaken bool
	checks := pool.New().WithContext(ctx)
	if changes.Email != nil && *changes.Email != current.Email {
		checks.Go(func(ctx context.Context) error {
			other, exists, err := s.users.GetByEmail(ctx, *changes.Email)
			if err != nil {
				return fmt.Errorf("get user by email: %w", err)
			}
			emailTaken = exists && other.ID != current.ID
			return nil
		})
	}
	if changes.Nickname != nil && *changes.Nickname != current.Nickname {
		checks.Go(func(ctx context.Context) error {
			other, exists, err := s.users.GetByNickname(ctx, *changes.Nickname)
			if err != nil {
				return fmt.Errorf("get user by nickname: %w", err)
			}
			nicknameTaken = exists && other.ID != current.ID
			return nil
		})
	}
	if err := checks.Wait(); err != nil {
		return err
	}
	if nicknameTaken {
		return fmt.Errorf("%w: %v", ErrConflict, user.ErrNicknameTaken)
	}
	if emailTaken {
		return fmt.Errorf("%w: %v", ErrConflict, user.ErrEmailTaken)
	}

	updated := changes.Apply(current)
	updated.UpdatedAt = s.now().UTC()
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.users.Update(ctx, updated); err != nil {
		return mapUserWriteError("update user", err)
	}

	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.ChangePassword", attribute.Int64("user.id", input.UserID))
	defer span.End()

	if input.NewPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrInvalidInput)
	}

	current, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(current.PasswordHash, input.CurrentPassword); err != nil {
		return fmt.Errorf("%w: wrong password", ErrUnauthorized)
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, current.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (s *UserService) getUser(ctx context.Context, userID int64) (user.User, error) {
	item, exists, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user %d not found", ErrNotFound, userID)
	}

	return item, nil
}

func mapUserWriteError(op string, err error) error {
	switch {
	case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrNicknameTaken):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func normalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
