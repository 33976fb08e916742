package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID          int64          `db:"id"`
	OwnerUserID int64          `db:"owner_user_id"`
	Name        string         `db:"name"`
	Picture     sql.NullString `db:"picture"`
	Description string         `db:"description"`
	MaxPlayers  int            `db:"max_players"`
	CreatedAt   time.Time      `db:"created_at"`
}

type teamInsertModel struct {
	OwnerUserID int64          `db:"owner_user_id"`
	Name        string         `db:"name"`
	Picture     sql.NullString `db:"picture"`
	Description string         `db:"description"`
	MaxPlayers  int            `db:"max_players"`
}
