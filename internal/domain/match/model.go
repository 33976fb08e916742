package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusRunning, StatusCompleted:
		return true
	default:
		return false
	}
}

type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
)

// ScoreStatus is the per-team result of a match, set on completion.
type ScoreStatus string

const (
	ScorePending ScoreStatus = "PENDING"
	ScoreWon     ScoreStatus = "WON"
	ScoreLost    ScoreStatus = "LOST"
	ScoreDraw    ScoreStatus = "DRAW"
)

// Match is a scheduled game between two teams of one championship.
type Match struct {
	ID               int64
	ChampionshipID   int64
	Status           Status
	PlannedStartTime time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (m Match) Completed() bool {
	return m.Status == StatusCompleted
}

// TeamScore is one team's side of a match.
type TeamScore struct {
	ID      int64
	MatchID int64
	TeamID  int64
	Side    Side
	Score   int
	Status  ScoreStatus
}

// Participant is a team score joined with its team for listings.
type Participant struct {
	TeamID  int64
	Name    string
	Picture *string
	Score   int
}

type Detail struct {
	Match Match
	Home  Participant
	Away  Participant
}

// TeamResult is a team score of a championship match, used for standings.
type TeamResult struct {
	TeamID int64
	Status ScoreStatus
}

// NewMatch is the input for scheduling a match.
type NewMatch struct {
	ChampionshipID   int64
	HomeTeamID       int64
	AwayTeamID       int64
	PlannedStartTime time.Time
}

func (n NewMatch) Validate() error {
	if n.ChampionshipID <= 0 {
		return fmt.Errorf("championship id is required")
	}
	if n.HomeTeamID <= 0 || n.AwayTeamID <= 0 {
		return fmt.Errorf("home and away teams are required")
	}
	if n.HomeTeamID == n.AwayTeamID {
		return fmt.Errorf("home and away teams must be different")
	}
	if n.PlannedStartTime.IsZero() {
		return fmt.Errorf("planned start time is required")
	}

	return nil
}
