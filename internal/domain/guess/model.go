package guess

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/match"
)

var (
	ErrDuplicate           = errors.New("guess on this match already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Outcome string

const (
	OutcomePending   Outcome = "PENDING"
	OutcomeWin       Outcome = "WIN"
	OutcomeLost      Outcome = "LOST"
	OutcomeDraw      Outcome = "DRAW"
	OutcomeCancelled Outcome = "CANCELLED"
)

// Guess is a stake a user places on a team of a match.
type Guess struct {
	ID            int64
	UserID        int64
	MatchID       int64
	TeamScoreID   int64
	Cost          int64
	Outcome       Outcome
	LootCollected bool
	CreatedAt     time.Time
}

func (g Guess) Validate() error {
	if g.UserID <= 0 || g.MatchID <= 0 || g.TeamScoreID <= 0 {
		return fmt.Errorf("guess user, match and team score are required")
	}
	if g.Cost < 1 {
		return fmt.Errorf("guess cost must be >= 1")
	}

	return nil
}

// Detail is a guess joined with the team and championship it refers to.
type Detail struct {
	Guess
	TeamName         string
	ChampionshipID   int64
	ChampionshipName string
}

// Stats aggregates a user's guess history for the profile page.
type Stats struct {
	HighestGuess    int64
	TotalEarnings   int64
	TotalLosses     int64
	TotalGuesses    int
	LastTeamGuessed string
}

// Payout describes how guesses on a team score are settled.
type Payout struct {
	Outcome    Outcome
	Multiplier int64
}

// PayoutFor maps a team score result to the outcome and stake multiplier
// of the guesses placed on it. Winners get twice the stake, draws a refund.
func PayoutFor(status match.ScoreStatus) (Payout, bool) {
	switch status {
	case match.ScoreWon:
		return Payout{Outcome: OutcomeWin, Multiplier: 2}, true
	case match.ScoreDraw:
		return Payout{Outcome: OutcomeDraw, Multiplier: 1}, true
	case match.ScoreLost:
		return Payout{Outcome: OutcomeLost, Multiplier: 0}, true
	default:
		return Payout{}, false
	}
}

func (p Payout) Credit(cost int64) int64 {
	return cost * p.Multiplier
}
