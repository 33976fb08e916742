package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID               int64     `db:"id"`
	ChampionshipID   int64     `db:"championship_id"`
	Status           string    `db:"status"`
	PlannedStartTime time.Time `db:"planned_start_time"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type teamScoreTableModel struct {
	ID      int64  `db:"id"`
	MatchID int64  `db:"match_id"`
	TeamID  int64  `db:"team_id"`
	Side    string `db:"side"`
	Score   int    `db:"score"`
	Status  string `db:"status"`
}

type matchDetailRow struct {
	matchTableModel
	HomeTeamID      int64          `db:"home_team_id"`
	HomeTeamName    string         `db:"home_team_name"`
	HomeTeamPicture sql.NullString `db:"home_team_picture"`
	HomeScore       int            `db:"home_score"`
	AwayTeamID      int64          `db:"away_team_id"`
	AwayTeamName    string         `db:"away_team_name"`
	AwayTeamPicture sql.NullString `db:"away_team_picture"`
	AwayScore       int            `db:"away_score"`
}

type teamResultRow struct {
	TeamID int64  `db:"team_id"`
	Status string `db:"status"`
}
