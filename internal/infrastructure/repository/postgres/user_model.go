package postgres

import (
	"database/sql"
	"time"
)

type userTableModel struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Nickname     string         `db:"nickname"`
	Picture      sql.NullString `db:"picture"`
	Score        int64          `db:"score"`
	Balance      int64          `db:"balance"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type userInsertModel struct {
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Nickname     string         `db:"nickname"`
	Picture      sql.NullString `db:"picture"`
	Score        int64          `db:"score"`
	Balance      int64          `db:"balance"`
}
