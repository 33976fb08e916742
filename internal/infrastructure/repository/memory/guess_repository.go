package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
)

type GuessRepository struct {
	store *Store
}

func NewGuessRepository(store *Store) *GuessRepository {
	return &GuessRepository{store: store}
}

func (r *GuessRepository) Place(_ context.Context, g guess.Guess) (guess.Guess, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.matches[g.MatchID]
	if !ok {
		return guess.Guess{}, fmt.Errorf("match %d not found", g.MatchID)
	}
	if m.Completed() {
		return guess.Guess{}, match.ErrAlreadyCompleted
	}

	for _, item := range r.store.guesses {
		if item.UserID == g.UserID && item.MatchID == g.MatchID {
			return guess.Guess{}, guess.ErrDuplicate
		}
	}

	u, ok := r.store.users[g.UserID]
	if !ok || u.Balance < g.Cost {
		return guess.Guess{}, guess.ErrInsufficientBalance
	}
	u.Balance -= g.Cost
	r.store.users[u.ID] = u

	r.store.nextGuessID++
	g.ID = r.store.nextGuessID
	r.store.guesses[g.ID] = g

	return g, nil
}

func (r *GuessRepository) ExistsForMatch(_ context.Context, userID, matchID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.guesses {
		if item.UserID == userID && item.MatchID == matchID {
			return true, nil
		}
	}
	return false, nil
}

func (r *GuessRepository) ListDetailsByUser(_ context.Context, userID int64) ([]guess.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]guess.Detail, 0)
	for _, item := range r.userGuesses(userID) {
		out = append(out, r.detail(item))
	}

	return out, nil
}

func (r *GuessRepository) StatsByUser(_ context.Context, userID int64) (guess.Stats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.userGuesses(userID)

	var stats guess.Stats
	for _, item := range items {
		stats.TotalGuesses++
		if item.Cost > stats.HighestGuess {
			stats.HighestGuess = item.Cost
		}
		switch item.Outcome {
		case guess.OutcomeWin:
			stats.TotalEarnings += item.Cost
		case guess.OutcomeLost:
			stats.TotalLosses += item.Cost
		}
	}
	if len(items) > 0 {
		stats.LastTeamGuessed = r.detail(items[0]).TeamName
	}

	return stats, nil
}

// userGuesses returns the guesses of userID, newest first.
func (r *GuessRepository) userGuesses(userID int64) []guess.Guess {
	items := make([]guess.Guess, 0)
	for _, item := range r.store.guesses {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items
}

func (r *GuessRepository) detail(item guess.Guess) guess.Detail {
	d := guess.Detail{Guess: item}
	ts := r.store.teamScores[item.TeamScoreID]
	d.TeamName = r.store.teams[ts.TeamID].Name
	m := r.store.matches[item.MatchID]
	d.ChampionshipID = m.ChampionshipID
	d.ChampionshipName = r.store.championships[m.ChampionshipID].Name
	return d
}
