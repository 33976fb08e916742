package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/champions-tracker/internal/domain/guess"
	"github.com/riskibarqy/champions-tracker/internal/domain/match"
	qb "github.com/riskibarqy/champions-tracker/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, in match.NewMatch) (match.Match, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, fmt.Errorf("begin tx for match create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertInto("matches").
		Columns("championship_id", "status", "planned_start_time").
		Values(in.ChampionshipID, string(match.StatusScheduled), in.PlannedStartTime.UTC()).
		Suffix("RETURNING id, created_at, updated_at").
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	m := match.Match{
		ChampionshipID:   in.ChampionshipID,
		Status:           match.StatusScheduled,
		PlannedStartTime: in.PlannedStartTime.UTC(),
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	scoresQuery, scoresArgs, err := qb.InsertInto("team_scores").
		Columns("match_id", "team_id", "side", "score", "status").
		Values(m.ID, in.HomeTeamID, string(match.SideHome), 0, string(match.ScorePending)).
		Values(m.ID, in.AwayTeamID, string(match.SideAway), 0, string(match.ScorePending)).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert team scores query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, scoresQuery, scoresArgs...); err != nil {
		return match.Match{}, fmt.Errorf("insert team scores match=%d: %w", m.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, fmt.Errorf("commit match create tx: %w", err)
	}

	return m, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListDetailsByChampionship(ctx context.Context, championshipID int64) ([]match.Detail, error) {
	const query = `
SELECT m.id,
       m.championship_id,
       m.status,
       m.planned_start_time,
       m.created_at,
       m.updated_at,
       h.team_id  AS home_team_id,
       ht.name    AS home_team_name,
       ht.picture AS home_team_picture,
       h.score    AS home_score,
       a.team_id  AS away_team_id,
       at.name    AS away_team_name,
       at.picture AS away_team_picture,
       a.score    AS away_score
FROM matches m
JOIN team_scores h ON h.match_id = m.id AND h.side = 'HOME'
JOIN teams ht ON ht.id = h.team_id
JOIN team_scores a ON a.match_id = m.id AND a.side = 'AWAY'
JOIN teams at ON at.id = a.team_id
WHERE m.championship_id = $1
ORDER BY m.planned_start_time, m.id`

	var rows []matchDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, championshipID); err != nil {
		return nil, fmt.Errorf("select championship matches: %w", err)
	}

	out := make([]match.Detail, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Detail{
			Match: matchFromRow(row.matchTableModel),
			Home: match.Participant{
				TeamID:  row.HomeTeamID,
				Name:    row.HomeTeamName,
				Picture: nullStringPtr(row.HomeTeamPicture),
				Score:   row.HomeScore,
			},
			Away: match.Participant{
				TeamID:  row.AwayTeamID,
				Name:    row.AwayTeamName,
				Picture: nullStringPtr(row.AwayTeamPicture),
				Score:   row.AwayScore,
			},
		})
	}

	return out, nil
}

func (r *MatchRepository) ListTeamScores(ctx context.Context, matchID int64) ([]match.TeamScore, error) {
	return listTeamScores(ctx, r.db, matchID, "")
}

// listTeamScores returns the scores of a match, home side first. lock is
// appended verbatim, e.g. "FOR UPDATE".
func listTeamScores(ctx context.Context, q sqlx.QueryerContext, matchID int64, lock string) ([]match.TeamScore, error) {
	builder := qb.Select("*").From("team_scores").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("side DESC", "id")
	if lock != "" {
		builder = builder.Suffix(lock)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team scores query: %w", err)
	}

	var rows []teamScoreTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team scores match=%d: %w", matchID, err)
	}

	out := make([]match.TeamScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamScoreFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetTeamScore(ctx context.Context, matchID, teamID int64) (match.TeamScore, bool, error) {
	query, args, err := qb.Select("*").From("team_scores").
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("team_id", teamID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.TeamScore{}, false, fmt.Errorf("build get team score query: %w", err)
	}

	var row teamScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.TeamScore{}, false, nil
		}
		return match.TeamScore{}, false, fmt.Errorf("get team score: %w", err)
	}

	return teamScoreFromRow(row), true, nil
}

const lockMatchOfScoreQuery = `
SELECT m.status
FROM matches m
JOIN team_scores ts ON ts.match_id = m.id
WHERE ts.id = $1
FOR SHARE OF m`

func (r *MatchRepository) UpdateScore(ctx context.Context, teamScoreID int64, score int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team score update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var status string
	if err := tx.GetContext(ctx, &status, lockMatchOfScoreQuery, teamScoreID); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("lock match of team score id=%d: %w", teamScoreID, err)
	}
	if match.Status(status) == match.StatusCompleted {
		return match.ErrAlreadyCompleted
	}

	query, args, err := qb.Update("team_scores").
		Set("score", score).
		Where(qb.Eq("id", teamScoreID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team score query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team score id=%d: %w", teamScoreID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team score update tx: %w", err)
	}

	return nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID int64, status match.Status) error {
	query, args, err := qb.Update("matches").
		Set("status", string(status)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", matchID),
			qb.Expr("status <> 'COMPLETED'"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match status query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match status id=%d: %w", matchID, err)
	}
	updated, err := affectedOne(res)
	if err != nil {
		return fmt.Errorf("update match status id=%d: %w", matchID, err)
	}
	if !updated {
		return match.ErrAlreadyCompleted
	}

	return nil
}

const (
	completeMatchQuery = `
UPDATE matches
SET status = 'COMPLETED', updated_at = NOW()
WHERE id = $1
  AND status <> 'COMPLETED'
RETURNING championship_id`

	settleTeamScoreQuery = `
UPDATE team_scores
SET status = :status
WHERE id = :team_score_id`

	// settleGuessesQuery resolves the pending guesses of one team score and
	// credits each user with the sum of their stakes times the multiplier.
	settleGuessesQuery = `
WITH settled AS (
    UPDATE guesses
    SET outcome = :outcome, loot_collected = :loot_collected
    WHERE team_score_id = :team_score_id
      AND outcome = 'PENDING'
    RETURNING user_id, guess_cost
), credited AS (
    UPDATE users u
    SET balance = u.balance + c.total * :multiplier, updated_at = NOW()
    FROM (SELECT user_id, SUM(guess_cost) AS total FROM settled GROUP BY user_id) c
    WHERE u.id = c.user_id
)
SELECT COUNT(*) AS guesses_settled, COALESCE(SUM(guess_cost), 0) AS total_cost
FROM settled`
)

var tallyColumns = map[match.ScoreStatus]string{
	match.ScoreWon:  "victory",
	match.ScoreLost: "defeat",
	match.ScoreDraw: "draw",
}

func (r *MatchRepository) Complete(ctx context.Context, matchID int64) (match.Settlement, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Settlement{}, fmt.Errorf("begin tx for match settlement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var championshipID int64
	if err := tx.GetContext(ctx, &championshipID, completeMatchQuery, matchID); err != nil {
		if isNotFound(err) {
			return match.Settlement{}, match.ErrAlreadyCompleted
		}
		return match.Settlement{}, fmt.Errorf("complete match id=%d: %w", matchID, err)
	}

	scores, err := listTeamScores(ctx, tx, matchID, "FOR UPDATE")
	if err != nil {
		return match.Settlement{}, err
	}

	s := match.NewSettlement(matchID, championshipID, scores)
	for _, result := range s.Results {
		if _, err := namedExec(ctx, tx, settleTeamScoreQuery, map[string]any{
			"status":        string(result.Status),
			"team_score_id": result.TeamScoreID,
		}); err != nil {
			return match.Settlement{}, fmt.Errorf("settle team score id=%d: %w", result.TeamScoreID, err)
		}

		if column, ok := tallyColumns[result.Status]; ok {
			tallyQuery := fmt.Sprintf(`
UPDATE team_championships
SET %[1]s = %[1]s + 1
WHERE championship_id = :championship_id
  AND team_id = :team_id`, column)
			if _, err := namedExec(ctx, tx, tallyQuery, map[string]any{
				"championship_id": championshipID,
				"team_id":         result.TeamID,
			}); err != nil {
				return match.Settlement{}, fmt.Errorf("tally %s team=%d: %w", column, result.TeamID, err)
			}
		}

		payout, ok := guess.PayoutFor(result.Status)
		if !ok {
			continue
		}
		settled, totalCost, err := settleGuesses(ctx, tx, result.TeamScoreID, payout)
		if err != nil {
			return match.Settlement{}, fmt.Errorf("settle guesses team_score=%d: %w", result.TeamScoreID, err)
		}
		s.GuessesSettled += settled
		s.TotalPayout += payout.Credit(totalCost)
	}

	if err := tx.Commit(); err != nil {
		return match.Settlement{}, fmt.Errorf("commit match settlement tx: %w", err)
	}

	return s, nil
}

func settleGuesses(ctx context.Context, tx *sqlx.Tx, teamScoreID int64, payout guess.Payout) (int, int64, error) {
	query, args, err := sqlx.Named(settleGuessesQuery, map[string]any{
		"outcome":        string(payout.Outcome),
		"loot_collected": payout.Multiplier > 0,
		"team_score_id":  teamScoreID,
		"multiplier":     payout.Multiplier,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("bind settle guesses query: %w", err)
	}
	query = tx.Rebind(query)

	var (
		settled   int
		totalCost int64
	)
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&settled, &totalCost); err != nil {
		return 0, 0, err
	}

	return settled, totalCost, nil
}

func (r *MatchRepository) ListResultsByChampionship(ctx context.Context, championshipID int64) ([]match.TeamResult, error) {
	const query = `
SELECT ts.team_id, ts.status
FROM team_scores ts
JOIN matches m ON m.id = ts.match_id
WHERE m.championship_id = $1`

	var rows []teamResultRow
	if err := r.db.SelectContext(ctx, &rows, query, championshipID); err != nil {
		return nil, fmt.Errorf("select championship results: %w", err)
	}

	out := make([]match.TeamResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.TeamResult{TeamID: row.TeamID, Status: match.ScoreStatus(row.Status)})
	}

	return out, nil
}

// namedExec binds a named query inside tx and reports whether one row changed.
func namedExec(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) (bool, error) {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return false, fmt.Errorf("bind query: %w", err)
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(bound), args...)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:               row.ID,
		ChampionshipID:   row.ChampionshipID,
		Status:           match.Status(row.Status),
		PlannedStartTime: row.PlannedStartTime,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func teamScoreFromRow(row teamScoreTableModel) match.TeamScore {
	return match.TeamScore{
		ID:      row.ID,
		MatchID: row.MatchID,
		TeamID:  row.TeamID,
		Side:    match.Side(row.Side),
		Score:   row.Score,
		Status:  match.ScoreStatus(row.Status),
	}
}
