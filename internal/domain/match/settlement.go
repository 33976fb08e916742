package match

// Result is the status assigned to one team score when a match completes.
type Result struct {
	TeamScoreID int64
	TeamID      int64
	Status      ScoreStatus
}

// SettlementReport summarizes the guesses resolved by a settlement.
type SettlementReport struct {
	GuessesSettled int
	TotalPayout    int64
}

// Settlement is everything that changed when a match was completed.
type Settlement struct {
	MatchID        int64
	ChampionshipID int64
	Results        []Result
	SettlementReport
}

// Resolve assigns WON/LOST/DRAW to the team scores of a match.
// The highest score wins; several teams sharing it draw and the rest lose.
func Resolve(scores []TeamScore) []Result {
	if len(scores) == 0 {
		return nil
	}

	highest := scores[0].Score
	for _, s := range scores[1:] {
		if s.Score > highest {
			highest = s.Score
		}
	}

	leaders := 0
	for _, s := range scores {
		if s.Score == highest {
			leaders++
		}
	}

	out := make([]Result, 0, len(scores))
	for _, s := range scores {
		status := ScoreLost
		if s.Score == highest {
			status = ScoreWon
			if leaders > 1 {
				status = ScoreDraw
			}
		}
		out = append(out, Result{TeamScoreID: s.ID, TeamID: s.TeamID, Status: status})
	}

	return out
}

// NewSettlement resolves the team scores of a match that is being completed.
func NewSettlement(matchID, championshipID int64, scores []TeamScore) Settlement {
	return Settlement{
		MatchID:        matchID,
		ChampionshipID: championshipID,
		Results:        Resolve(scores),
	}
}
