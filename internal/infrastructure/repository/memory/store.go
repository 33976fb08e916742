package memory

import (
	"sync"

	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
)

// Store holds every table behind one lock so that multi-table writes
// (guess placement, match settlement) are atomic like a DB transaction.
type Store struct {
	mu sync.RWMutex

	users         map[int64]user.User
	teams         map[int64]team.Team
	championships map[int64]championship.Championship
	memberships   map[int64][]*championship.Entry
	matches       map[int64]match.Match
	teamScores    map[int64]match.TeamScore
	guesses       map[int64]guess.Guess

	nextUserID         int64
	nextTeamID         int64
	nextChampionshipID int64
	nextMatchID        int64
	nextTeamScoreID    int64
	nextGuessID        int64
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int64]user.User),
		teams:         make(map[int64]team.Team),
		championships: make(map[int64]championship.Championship),
		memberships:   make(map[int64][]*championship.Entry),
		matches:       make(map[int64]match.Match),
		teamScores:    make(map[int64]match.TeamScore),
		guesses:       make(map[int64]guess.Guess),
	}
}

func (s *Store) scoresOfMatch(matchID int64) []match.TeamScore {
	out := make([]match.TeamScore, 0, 2)
	for _, ts := range s.teamScores {
		if ts.MatchID == matchID {
			out = append(out, ts)
		}
	}
	sortTeamScores(out)
	return out
}

func (s *Store) entry(championshipID, teamID int64) *championship.Entry {
	for _, e := range s.memberships[championshipID] {
		if e.TeamID == teamID {
			return e
		}
	}
	return nil
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
