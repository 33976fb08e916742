package postgres

import (
	"database/sql"
	"time"
)

type championshipTableModel struct {
	ID          int64          `db:"id"`
	OwnerUserID int64          `db:"owner_user_id"`
	Name        string         `db:"name"`
	Picture     sql.NullString `db:"picture"`
	Description string         `db:"description"`
	Type        string         `db:"type"`
	Game        string         `db:"game"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
}

type championshipInsertModel struct {
	OwnerUserID int64          `db:"owner_user_id"`
	Name        string         `db:"name"`
	Picture     sql.NullString `db:"picture"`
	Description string         `db:"description"`
	Type        string         `db:"type"`
	Game        string         `db:"game"`
	Status      string         `db:"status"`
}

type teamChampionshipRow struct {
	ChampionshipID int64          `db:"championship_id"`
	TeamID         int64          `db:"team_id"`
	TeamName       string         `db:"team_name"`
	TeamPicture    sql.NullString `db:"team_picture"`
	Victory        int            `db:"victory"`
	Defeat         int            `db:"defeat"`
	Draw           int            `db:"draw"`
}

type teamsAmountRow struct {
	ChampionshipID int64 `db:"championship_id"`
	TeamsAmount    int   `db:"teams_amount"`
}
