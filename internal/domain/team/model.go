package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is a user-created squad that can join championships.
type Team struct {
	ID          int64
	OwnerUserID int64
	Name        string
	Picture     *string
	Description string
	MaxPlayers  int
	CreatedAt   time.Time
}

func (t Team) Validate() error {
	if t.OwnerUserID <= 0 {
		return fmt.Errorf("team owner is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.MaxPlayers < 1 {
		return fmt.Errorf("team max players must be >= 1")
	}

	return nil
}
