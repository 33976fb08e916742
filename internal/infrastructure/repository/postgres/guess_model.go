package postgres

import (
	"database/sql"
	"time"
)

type guessDetailRow struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	MatchID          int64     `db:"match_id"`
	TeamScoreID      int64     `db:"team_score_id"`
	GuessCost        int64     `db:"guess_cost"`
	Outcome          string    `db:"outcome"`
	LootCollected    bool      `db:"loot_collected"`
	CreatedAt        time.Time `db:"created_at"`
	TeamName         string    `db:"team_name"`
	ChampionshipID   int64     `db:"championship_id"`
	ChampionshipName string    `db:"championship_name"`
}

type guessStatsRow struct {
	HighestGuess    int64          `db:"highest_guess"`
	TotalEarnings   int64          `db:"total_earnings"`
	TotalLosses     int64          `db:"total_losses"`
	TotalGuesses    int            `db:"total_guesses"`
	LastTeamGuessed sql.NullString `db:"last_team_guessed"`
}
