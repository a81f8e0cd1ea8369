package querybuilder

import "testing"

func TestSelect_WhereOrderLimit(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("matches").
		Where(Eq("division", "1ra"), Eq("status", "FINISHED")).
		OrderBy("round", "kickoff_at").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "SELECT * FROM matches WHERE division = $1 AND status = $2 ORDER BY round, kickoff_at LIMIT 10"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 2 || args[0] != "1ra" || args[1] != "FINISHED" {
		t.Fatalf("args = %v", args)
	}
}

func TestSelect_ExprCondition(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("contact_messages").
		Where(Expr("(created_at, id) < (?, ?)", "ts", "id-9")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "SELECT id FROM contact_messages WHERE (created_at, id) < ($1, $2)"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertAndUpdateAndDelete(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("teams").Set("id", "t1").Set("name", "Gallos").ToSQL()
	if err != nil {
		t.Fatalf("insert ToSQL failed: %v", err)
	}
	if query != "INSERT INTO teams (id, name) VALUES ($1, $2)" || len(args) != 2 {
		t.Fatalf("insert query = %q args = %v", query, args)
	}

	query, args, err = Update("teams").Set("name", "Zorros").Where(Eq("id", "t1")).ToSQL()
	if err != nil {
		t.Fatalf("update ToSQL failed: %v", err)
	}
	if query != "UPDATE teams SET name = $1 WHERE id = $2" || len(args) != 2 {
		t.Fatalf("update query = %q args = %v", query, args)
	}

	query, args, err = DeleteFrom("teams").Where(Eq("id", "t1")).ToSQL()
	if err != nil {
		t.Fatalf("delete ToSQL failed: %v", err)
	}
	if query != "DELETE FROM teams WHERE id = $1" || len(args) != 1 {
		t.Fatalf("delete query = %q args = %v", query, args)
	}

	if _, _, err := DeleteFrom("teams").ToSQL(); err == nil {
		t.Fatal("delete without where must fail")
	}
}
