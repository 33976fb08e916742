package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("users").
		Where(Eq("status", "ACTIVE"), Expr("deleted_at IS NULL")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM users WHERE status = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "ACTIVE" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("id", "name").
		Values(int64(1), "name-1").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "name-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("users").
		Set("name", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE users SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderPagination(t *testing.T) {
	query, args, err := Select("id").
		From("championships").
		Where(ILike("name", "cup_50%")).
		OrderBy("created_at DESC", "id DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build paginated select query: %v", err)
	}

	wantQuery := "SELECT id FROM championships WHERE name ILIKE $1 ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != `%cup\_50\%%` {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderZeroOffsetOmitted(t *testing.T) {
	query, _, err := Select("id").From("teams").Offset(0).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM teams" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name    string `db:"name"`
		Skipped string `db:"-"`
		Score   int    `db:"score"`
	}

	query, args, err := InsertModel("teams", row{Name: "Reds", Score: 3}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO teams (name, score) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Reds" || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderExpressionArgsKeepOrder(t *testing.T) {
	query, args, err := Update("users").
		SetExpr("balance", "balance - ?", int64(50)).
		Where(Eq("id", int64(3)), Expr("balance >= ?", int64(50))).
		Suffix("RETURNING balance").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $3 RETURNING balance"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(50) || args[1] != int64(3) || args[2] != int64(50) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInConditionEmptyMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("teams").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM teams WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query: %s %+v", query, args)
	}
}

func TestSelectBuilderLockingSuffix(t *testing.T) {
	query, args, err := Select("*").
		From("team_scores").
		Where(Eq("match_id", int64(5))).
		OrderBy("side DESC", "id").
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM team_scores WHERE match_id = $1 ORDER BY side DESC, id FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(5) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
