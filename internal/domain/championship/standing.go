package championship

import (
	"sort"

	"github.com/riskibarqy/champions-tracker/internal/domain/match"
)

const (
	PointsPerWin  = 3
	PointsPerDraw = 1
)

// Standing is a team's position data in a championship table.
type Standing struct {
	TeamID   int64
	TeamName string
	Wins     int
	Losses   int
	Draws    int
	Points   int
}

// BuildStandings tallies results for every member team and orders the table
// by points, wins and draws descending, then losses ascending.
func BuildStandings(entries []Entry, results []match.TeamResult) []Standing {
	byTeam := make(map[int64]*Standing, len(entries))
	out := make([]Standing, 0, len(entries))
	for _, e := range entries {
		out = append(out, Standing{TeamID: e.TeamID, TeamName: e.TeamName})
	}
	for i := range out {
		byTeam[out[i].TeamID] = &out[i]
	}

	for _, r := range results {
		s, ok := byTeam[r.TeamID]
		if !ok {
			continue
		}
		switch r.Status {
		case match.ScoreWon:
			s.Wins++
		case match.ScoreLost:
			s.Losses++
		case match.ScoreDraw:
			s.Draws++
		}
	}

	for i := range out {
		out[i].Points = out[i].Wins*PointsPerWin + out[i].Draws*PointsPerDraw
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Draws != b.Draws {
			return a.Draws > b.Draws
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.TeamID < b.TeamID
	})

	return out
}
