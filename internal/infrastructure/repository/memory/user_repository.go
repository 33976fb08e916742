package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/champions-tracker/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetByID(_ context.Context, userID int64) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.users[userID]
	return item, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if strings.EqualFold(item.Email, email) {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) GetByNickname(_ context.Context, nickname string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if item.Nickname == nickname {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkUnique(u); err != nil {
		return user.User{}, err
	}

	r.store.nextUserID++
	u.ID = r.store.nextUserID
	u.Picture = copyString(u.Picture)
	r.store.users[u.ID] = u

	return u, nil
}

func (r *UserRepository) Update(_ context.Context, u user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.users[u.ID]
	if !ok {
		return nil
	}
	if err := r.checkUnique(u); err != nil {
		return err
	}

	current.Email = u.Email
	current.Name = u.Name
	current.Nickname = u.Nickname
	current.Picture = copyString(u.Picture)
	current.UpdatedAt = u.UpdatedAt
	r.store.users[u.ID] = current

	return nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.users[userID]
	if !ok {
		return nil
	}
	current.PasswordHash = passwordHash
	r.store.users[userID] = current

	return nil
}

func (r *UserRepository) checkUnique(u user.User) error {
	for _, item := range r.store.users {
		if item.ID == u.ID {
			continue
		}
		if strings.EqualFold(item.Email, u.Email) {
			return user.ErrEmailTaken
		}
		if item.Nickname == u.Nickname {
			return user.ErrNicknameTaken
		}
	}
	return nil
}
