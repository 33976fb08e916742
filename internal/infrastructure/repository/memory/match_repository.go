package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
)

type MatchRepository struct {
	store *Store
	now   func() time.Time
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store, now: time.Now}
}

func (r *MatchRepository) Create(_ context.Context, in match.NewMatch) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.now().UTC()
	r.store.nextMatchID++
	m := match.Match{
		ID:               r.store.nextMatchID,
		ChampionshipID:   in.ChampionshipID,
		Status:           match.StatusScheduled,
		PlannedStartTime: in.PlannedStartTime.UTC(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	r.store.matches[m.ID] = m

	for _, side := range []struct {
		teamID int64
		side   match.Side
	}{
		{teamID: in.HomeTeamID, side: match.SideHome},
		{teamID: in.AwayTeamID, side: match.SideAway},
	} {
		r.store.nextTeamScoreID++
		r.store.teamScores[r.store.nextTeamScoreID] = match.TeamScore{
			ID:      r.store.nextTeamScoreID,
			MatchID: m.ID,
			TeamID:  side.teamID,
			Side:    side.side,
			Status:  match.ScorePending,
		}
	}

	return m, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) ListDetailsByChampionship(_ context.Context, championshipID int64) ([]match.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Detail, 0)
	for _, m := range r.store.matches {
		if m.ChampionshipID != championshipID {
			continue
		}
		detail := match.Detail{Match: m}
		for _, ts := range r.store.scoresOfMatch(m.ID) {
			t := r.store.teams[ts.TeamID]
			p := match.Participant{
				TeamID:  ts.TeamID,
				Name:    t.Name,
				Picture: copyString(t.Picture),
				Score:   ts.Score,
			}
			if ts.Side == match.SideHome {
				detail.Home = p
			} else {
				detail.Away = p
			}
		}
		out = append(out, detail)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Match, out[j].Match
		if !a.PlannedStartTime.Equal(b.PlannedStartTime) {
			return a.PlannedStartTime.Before(b.PlannedStartTime)
		}
		return a.ID < b.ID
	})

	return out, nil
}

func (r *MatchRepository) ListTeamScores(_ context.Context, matchID int64) ([]match.TeamScore, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.scoresOfMatch(matchID), nil
}

func (r *MatchRepository) GetTeamScore(_ context.Context, matchID, teamID int64) (match.TeamScore, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, ts := range r.store.teamScores {
		if ts.MatchID == matchID && ts.TeamID == teamID {
			return ts, true, nil
		}
	}
	return match.TeamScore{}, false, nil
}

func (r *MatchRepository) UpdateScore(_ context.Context, teamScoreID int64, score int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ts, ok := r.store.teamScores[teamScoreID]
	if !ok {
		return nil
	}
	if r.store.matches[ts.MatchID].Completed() {
		return match.ErrAlreadyCompleted
	}
	ts.Score = score
	r.store.teamScores[teamScoreID] = ts

	return nil
}

func (r *MatchRepository) UpdateStatus(_ context.Context, matchID int64, status match.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.matches[matchID]
	if !ok {
		return nil
	}
	if m.Completed() {
		return match.ErrAlreadyCompleted
	}
	m.Status = status
	m.UpdatedAt = r.now().UTC()
	r.store.matches[matchID] = m

	return nil
}

func (r *MatchRepository) Complete(_ context.Context, matchID int64) (match.Settlement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.matches[matchID]
	if !ok || m.Completed() {
		return match.Settlement{}, match.ErrAlreadyCompleted
	}
	m.Status = match.StatusCompleted
	m.UpdatedAt = r.now().UTC()
	r.store.matches[m.ID] = m

	s := match.NewSettlement(m.ID, m.ChampionshipID, r.store.scoresOfMatch(m.ID))
	for _, result := range s.Results {
		ts, ok := r.store.teamScores[result.TeamScoreID]
		if !ok {
			continue
		}
		ts.Status = result.Status
		r.store.teamScores[ts.ID] = ts

		if e := r.store.entry(s.ChampionshipID, result.TeamID); e != nil {
			switch result.Status {
			case match.ScoreWon:
				e.Victory++
			case match.ScoreLost:
				e.Defeat++
			case match.ScoreDraw:
				e.Draw++
			}
		}

		payout, ok := guess.PayoutFor(result.Status)
		if !ok {
			continue
		}
		for id, g := range r.store.guesses {
			if g.TeamScoreID != ts.ID || g.Outcome != guess.OutcomePending {
				continue
			}
			credit := payout.Credit(g.Cost)
			g.Outcome = payout.Outcome
			if credit > 0 {
				g.LootCollected = true
				u := r.store.users[g.UserID]
				u.Balance += credit
				r.store.users[g.UserID] = u
			}
			r.store.guesses[id] = g

			s.GuessesSettled++
			s.TotalPayout += credit
		}
	}

	return s, nil
}

func (r *MatchRepository) ListResultsByChampionship(_ context.Context, championshipID int64) ([]match.TeamResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.TeamResult, 0)
	for _, ts := range r.store.teamScores {
		m, ok := r.store.matches[ts.MatchID]
		if !ok || m.ChampionshipID != championshipID {
			continue
		}
		out = append(out, match.TeamResult{TeamID: ts.TeamID, Status: ts.Status})
	}

	return out, nil
}

// sortTeamScores orders the home side first.
func sortTeamScores(items []match.TeamScore) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Side != items[j].Side {
			return items[i].Side == match.SideHome
		}
		return items[i].ID < items[j].ID
	})
}
