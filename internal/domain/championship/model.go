package championship

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrTeamAlreadyMember = errors.New("team already in championship")

type Type string

const (
	TypePhysical Type = "PHYSICAL"
	TypeVirtual  Type = "VIRTUAL"
)

func (t Type) Valid() bool {
	return t == TypePhysical || t == TypeVirtual
}

type Status string

const StatusActive Status = "ACTIVE"

// Championship is a competition owned by one user.
type Championship struct {
	ID          int64
	OwnerUserID int64
	Name        string
	Picture     *string
	Description string
	Type        Type
	Game        string
	Status      Status
	CreatedAt   time.Time
}

func (c Championship) Validate() error {
	if c.OwnerUserID <= 0 {
		return fmt.Errorf("championship owner is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("championship name is required")
	}
	if !c.Type.Valid() {
		return fmt.Errorf("invalid championship type %q", c.Type)
	}

	return nil
}

func (c Championship) OwnedBy(userID int64) bool {
	return c.OwnerUserID == userID
}

// Summary is a championship with its number of member teams.
type Summary struct {
	Championship
	TeamsAmount int
}

// ListFilter selects a page of championships, newest first.
type ListFilter struct {
	Query    string
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func (f ListFilter) Normalize() ListFilter {
	f.Query = strings.TrimSpace(f.Query)
	if f.Page < 0 {
		f.Page = 0
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

func (f ListFilter) Offset() int {
	return f.Page * f.PageSize
}

// Entry is a team's membership in a championship with its tallies.
type Entry struct {
	ChampionshipID int64
	TeamID         int64
	TeamName       string
	TeamPicture    *string
	Victory        int
	Defeat         int
	Draw           int
}
