package guess

import "context"

// Repository describes guess persistence needs from use cases.
type Repository interface {
	// Place debits the stake from the user's balance and stores the guess
	// atomically. It returns ErrInsufficientBalance, ErrDuplicate, or
	// match.ErrAlreadyCompleted when the match completed before the debit.
	Place(ctx context.Context, g Guess) (Guess, error)
	ExistsForMatch(ctx context.Context, userID, matchID int64) (bool, error)
	ListDetailsByUser(ctx context.Context, userID int64) ([]Detail, error)
	StatsByUser(ctx context.Context, userID int64) (Stats, error)
}
