package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/champions-tracker/internal/domain/championship"
	qb "github.com/riskibarqy/champions-tracker/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) Create(ctx context.Context, c championship.Championship) (championship.Championship, error) {
	insertModel := championshipInsertModel{
		OwnerUserID: c.OwnerUserID,
		Name:        c.Name,
		Picture:     toNullString(c.Picture),
		Description: c.Description,
		Type:        string(c.Type),
		Game:        c.Game,
		Status:      string(c.Status),
	}

	query, args, err := qb.InsertModel("championships", insertModel, "RETURNING id, created_at")
	if err != nil {
		return championship.Championship{}, fmt.Errorf("build insert championship query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return championship.Championship{}, fmt.Errorf("insert championship: %w", err)
	}

	return c, nil
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, championshipID int64) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.Eq("id", championshipID)).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build get championship by id query: %w", err)
	}

	var row championshipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("get championship by id: %w", err)
	}

	return championshipFromRow(row), true, nil
}

func (r *ChampionshipRepository) List(ctx context.Context, filter championship.ListFilter) ([]championship.Championship, error) {
	filter = filter.Normalize()

	builder := qb.Select("*").From("championships")
	if filter.Query != "" {
		builder = builder.Where(qb.ILike("name", filter.Query))
	}
	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, championshipFromRow(row))
	}

	return out, nil
}

func championshipFromRow(row championshipTableModel) championship.Championship {
	return championship.Championship{
		ID:          row.ID,
		OwnerUserID: row.OwnerUserID,
		Name:        row.Name,
		Picture:     nullStringPtr(row.Picture),
		Description: row.Description,
		Type:        championship.Type(row.Type),
		Game:        row.Game,
		Status:      championship.Status(row.Status),
		CreatedAt:   row.CreatedAt,
	}
}

type MembershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) AddTeam(ctx context.Context, championshipID, teamID int64) error {
	query, args, err := qb.InsertInto("team_championships").
		Columns("championship_id", "team_id").
		Values(championshipID, teamID).
		Suffix("ON CONFLICT (championship_id, team_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team championship query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert team championship championship=%d team=%d: %w", championshipID, teamID, err)
	}
	inserted, err := affectedOne(res)
	if err != nil {
		return fmt.Errorf("read inserted team championship rows: %w", err)
	}
	if !inserted {
		return championship.ErrTeamAlreadyMember
	}

	return nil
}

func (r *MembershipRepository) IsMember(ctx context.Context, championshipID, teamID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM team_championships WHERE championship_id = $1 AND team_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, championshipID, teamID); err != nil {
		return false, fmt.Errorf("check team championship membership: %w", err)
	}

	return exists, nil
}

func (r *MembershipRepository) ListEntries(ctx context.Context, championshipID int64) ([]championship.Entry, error) {
	const query = `
SELECT tc.championship_id,
       tc.team_id,
       t.name    AS team_name,
       t.picture AS team_picture,
       tc.victory,
       tc.defeat,
       tc.draw
FROM team_championships tc
JOIN teams t ON t.id = tc.team_id
WHERE tc.championship_id = $1
ORDER BY tc.created_at, tc.team_id`

	var rows []teamChampionshipRow
	if err := r.db.SelectContext(ctx, &rows, query, championshipID); err != nil {
		return nil, fmt.Errorf("select championship teams: %w", err)
	}

	out := make([]championship.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, championship.Entry{
			ChampionshipID: row.ChampionshipID,
			TeamID:         row.TeamID,
			TeamName:       row.TeamName,
			TeamPicture:    nullStringPtr(row.TeamPicture),
			Victory:        row.Victory,
			Defeat:         row.Defeat,
			Draw:           row.Draw,
		})
	}

	return out, nil
}

func (r *MembershipRepository) CountTeams(ctx context.Context, championshipIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(championshipIDs))
	if len(championshipIDs) == 0 {
		return out, nil
	}

	ids := make([]any, 0, len(championshipIDs))
	for _, id := range championshipIDs {
		ids = append(ids, id)
		out[id] = 0
	}

	query, args, err := qb.Select("championship_id", "COUNT(*) AS teams_amount").
		From("team_championships").
		Where(qb.In("championship_id", ids)).
		GroupBy("championship_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count championship teams query: %w", err)
	}

	var rows []teamsAmountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count championship teams: %w", err)
	}
	for _, row := range rows {
		out[row.ChampionshipID] = row.TeamsAmount
	}

	return out, nil
}
