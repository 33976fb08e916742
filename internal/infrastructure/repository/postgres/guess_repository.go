package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	qb "github.com/riskibarqy/champions-tracker/internal/platform/querybuilder"
)

type GuessRepository struct {
	db *sqlx.DB
}

func NewGuessRepository(db *sqlx.DB) *GuessRepository {
	return &GuessRepository{db: db}
}

const (
	// lockMatchQuery holds a share lock on the match so completion waits for
	// in-flight placements and placements wait for an in-flight completion.
	lockMatchQuery = `SELECT status FROM matches WHERE id = $1 FOR SHARE`

	debitBalanceQuery = `
UPDATE users
SET balance = balance - :cost, updated_at = NOW()
WHERE id = :user_id
  AND balance >= :cost`

	guessDetailColumns = `
SELECT g.id,
       g.user_id,
       g.match_id,
       g.team_score_id,
       g.guess_cost,
       g.outcome,
       g.loot_collected,
       g.created_at,
       t.name AS team_name,
       c.id   AS championship_id,
       c.name AS championship_name
FROM guesses g
JOIN team_scores ts ON ts.id = g.team_score_id
JOIN teams t ON t.id = ts.team_id
JOIN matches m ON m.id = g.match_id
JOIN championships c ON c.id = m.championship_id`
)

func (r *GuessRepository) Place(ctx context.Context, g guess.Guess) (guess.Guess, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return guess.Guess{}, fmt.Errorf("begin tx for guess place: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := ensureMatchOpen(ctx, tx, g.MatchID); err != nil {
		return guess.Guess{}, err
	}

	debited, err := namedExec(ctx, tx, debitBalanceQuery, map[string]any{
		"cost":    g.Cost,
		"user_id": g.UserID,
	})
	if err != nil {
		return guess.Guess{}, fmt.Errorf("debit balance user=%d: %w", g.UserID, err)
	}
	if !debited {
		return guess.Guess{}, guess.ErrInsufficientBalance
	}

	query, args, err := qb.InsertInto("guesses").
		Columns("user_id", "match_id", "team_score_id", "guess_cost", "outcome", "loot_collected").
		Values(g.UserID, g.MatchID, g.TeamScoreID, g.Cost, string(g.Outcome), g.LootCollected).
		Suffix("RETURNING id, created_at").
		ToSQL()
	if err != nil {
		return guess.Guess{}, fmt.Errorf("build insert guess query: %w", err)
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&g.ID, &g.CreatedAt); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return guess.Guess{}, guess.ErrDuplicate
		}
		return guess.Guess{}, fmt.Errorf("insert guess: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return guess.Guess{}, fmt.Errorf("commit guess place tx: %w", err)
	}

	return g, nil
}

// ensureMatchOpen share-locks the match row and fails when it is completed.
func ensureMatchOpen(ctx context.Context, tx *sqlx.Tx, matchID int64) error {
	var status string
	if err := tx.GetContext(ctx, &status, lockMatchQuery, matchID); err != nil {
		return fmt.Errorf("lock match id=%d: %w", matchID, err)
	}
	if match.Status(status) == match.StatusCompleted {
		return match.ErrAlreadyCompleted
	}
	return nil
}

func (r *GuessRepository) ExistsForMatch(ctx context.Context, userID, matchID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM guesses WHERE user_id = $1 AND match_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, matchID); err != nil {
		return false, fmt.Errorf("check guess exists user=%d match=%d: %w", userID, matchID, err)
	}

	return exists, nil
}

func (r *GuessRepository) ListDetailsByUser(ctx context.Context, userID int64) ([]guess.Detail, error) {
	query := guessDetailColumns + `
WHERE g.user_id = $1
ORDER BY g.created_at DESC, g.id DESC`

	var rows []guessDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("select user guesses: %w", err)
	}

	out := make([]guess.Detail, 0, len(rows))
	for _, row := range rows {
		out = append(out, guess.Detail{
			Guess: guess.Guess{
				ID:            row.ID,
				UserID:        row.UserID,
				MatchID:       row.MatchID,
				TeamScoreID:   row.TeamScoreID,
				Cost:          row.GuessCost,
				Outcome:       guess.Outcome(row.Outcome),
				LootCollected: row.LootCollected,
				CreatedAt:     row.CreatedAt,
			},
			TeamName:         row.TeamName,
			ChampionshipID:   row.ChampionshipID,
			ChampionshipName: row.ChampionshipName,
		})
	}

	return out, nil
}

func (r *GuessRepository) StatsByUser(ctx context.Context, userID int64) (guess.Stats, error) {
	const query = `
SELECT COALESCE(MAX(g.guess_cost), 0)                                  AS highest_guess,
       COALESCE(SUM(g.guess_cost) FILTER (WHERE g.outcome = 'WIN'), 0)  AS total_earnings,
       COALESCE(SUM(g.guess_cost) FILTER (WHERE g.outcome = 'LOST'), 0) AS total_losses,
       COUNT(*)                                                        AS total_guesses,
       (SELECT t.name
        FROM guesses lg
        JOIN team_scores ts ON ts.id = lg.team_score_id
        JOIN teams t ON t.id = ts.team_id
        WHERE lg.user_id = $1
        ORDER BY lg.created_at DESC, lg.id DESC
        LIMIT 1)                                                       AS last_team_guessed
FROM guesses g
WHERE g.user_id = $1`

	var row guessStatsRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return guess.Stats{}, fmt.Errorf("select guess stats user=%d: %w", userID, err)
	}

	return guess.Stats{
		HighestGuess:    row.HighestGuess,
		TotalEarnings:   row.TotalEarnings,
		TotalLosses:     row.TotalLosses,
		TotalGuesses:    row.TotalGuesses,
		LastTeamGuessed: row.LastTeamGuessed.String,
	}, nil
}
