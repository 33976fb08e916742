package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/champions-tracker/internal/domain/team"
	qb "github.com/riskibarqy/champions-tracker/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	insertModel := teamInsertModel{
		OwnerUserID: t.OwnerUserID,
		Name:        t.Name,
		Picture:     toNullString(t.Picture),
		Description: t.Description,
		MaxPlayers:  t.MaxPlayers,
	}

	query, args, err := qb.InsertModel("teams", insertModel, "RETURNING id, created_at")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	return t, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return team.Team{
		ID:          row.ID,
		OwnerUserID: row.OwnerUserID,
		Name:        row.Name,
		Picture:     nullStringPtr(row.Picture),
		Description: row.Description,
		MaxPlayers:  row.MaxPlayers,
		CreatedAt:   row.CreatedAt,
	}, true, nil
}
