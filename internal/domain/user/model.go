package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmailTaken    = errors.New("email already exists")
	ErrNicknameTaken = errors.New("nickname already exists")
)

// User is an account that owns teams and championships and places guesses.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Nickname     string
	Picture      *string
	Score        int64
	Balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if strings.TrimSpace(u.Nickname) == "" {
		return fmt.Errorf("user nickname is required")
	}
	if strings.ContainsAny(u.Nickname, " \t\n") {
		return fmt.Errorf("user nickname cannot contain spaces")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("user password hash is required")
	}
	if u.Balance < 0 {
		return fmt.Errorf("user balance cannot be negative")
	}

	return nil
}

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID int64
}

// Changes lists profile fields to overwrite; nil means unchanged.
type Changes struct {
	Email    *string
	Name     *string
	Nickname *string
	Picture  *string
}

func (c Changes) Empty() bool {
	return c.Email == nil && c.Name == nil && c.Nickname == nil && c.Picture == nil
}

// Apply returns a copy of u with the non-nil changes applied.
func (c Changes) Apply(u User) User {
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.Name != nil {
		u.Name = *c.Name
	}
	if c.Nickname != nil {
		u.Nickname = *c.Nickname
	}
	if c.Picture != nil {
		if *c.Picture == "" {
			u.Picture = nil
		} else {
			picture := *c.Picture
			u.Picture = &picture
		}
	}
	return u
}
