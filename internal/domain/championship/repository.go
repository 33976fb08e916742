package championship

import "context"

// Repository describes championship persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, c Championship) (Championship, error)
	GetByID(ctx context.Context, championshipID int64) (Championship, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Championship, error)
}

// MembershipRepository stores which teams take part in a championship.
type MembershipRepository interface {
	AddTeam(ctx context.Context, championshipID, teamID int64) error
	IsMember(ctx context.Context, championshipID, teamID int64) (bool, error)
	ListEntries(ctx context.Context, championshipID int64) ([]Entry, error)
	CountTeams(ctx context.Context, championshipIDs []int64) (map[int64]int, error)
}
