package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	qb "github.com/riskibarqy/champions-tracker/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (user.User, bool, error) {
	return r.getOne(ctx, "id", qb.Eq("id", userID))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, "email", qb.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *UserRepository) GetByNickname(ctx context.Context, nickname string) (user.User, bool, error) {
	return r.getOne(ctx, "nickname", qb.Eq("nickname", nickname))
}

func (r *UserRepository) getOne(ctx context.Context, by string, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by %s query: %w", by, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by %s: %w", by, err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	insertModel := userInsertModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Nickname:     u.Nickname,
		Picture:      toNullString(u.Picture),
		Score:        u.Score,
		Balance:      u.Balance,
	}

	query, args, err := qb.InsertModel("users", insertModel, "RETURNING id, created_at, updated_at")
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if mapped := mapUserConstraint(err); mapped != nil {
			return user.User{}, mapped
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	query, args, err := qb.Update("users").
		Set("email", u.Email).
		Set("name", u.Name).
		Set("nickname", u.Nickname).
		Set("picture", toNullString(u.Picture)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", u.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if mapped := mapUserConstraint(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update user id=%d: %w", u.ID, err)
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	query, args, err := qb.Update("users").
		Set("password_hash", passwordHash).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update user password query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update user password id=%d: %w", userID, err)
	}

	return nil
}

func mapUserConstraint(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	switch {
	case strings.Contains(constraint, "nickname"):
		return user.ErrNicknameTaken
	default:
		return user.ErrEmailTaken
	}
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Name:         row.Name,
		Nickname:     row.Nickname,
		Picture:      nullStringPtr(row.Picture),
		Score:        row.Score,
		Balance:      row.Balance,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
