package match

import (
	"context"
	"errors"
)

var ErrAlreadyCompleted = errors.New("match already completed")

// Repository describes match persistence needs from use cases.
type Repository interface {
	// Create stores the match with a PENDING team score for each side.
	Create(ctx context.Context, in NewMatch) (Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	ListDetailsByChampionship(ctx context.Context, championshipID int64) ([]Detail, error)
	ListTeamScores(ctx context.Context, matchID int64) ([]TeamScore, error)
	GetTeamScore(ctx context.Context, matchID, teamID int64) (TeamScore, bool, error)
	// UpdateScore and UpdateStatus return ErrAlreadyCompleted once the match
	// is completed.
	UpdateScore(ctx context.Context, teamScoreID int64, score int) error
	UpdateStatus(ctx context.Context, matchID int64, status Status) error
	// Complete marks the match completed and settles it in one step: team
	// score statuses are resolved from the scores stored at that moment, then
	// guess outcomes, balance payouts and championship tallies are applied.
	// A second call returns ErrAlreadyCompleted.
	Complete(ctx context.Context, matchID int64) (Settlement, error)
	ListResultsByChampionship(ctx context.Context, championshipID int64) ([]TeamResult, error)
}
