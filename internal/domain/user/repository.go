package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByNickname(ctx context.Context, nickname string) (User, bool, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}
