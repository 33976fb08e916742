package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestUniqueViolation(t *testing.T) {
	t.Run("matches unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert user: %w", &pq.Error{Code: "23505", Constraint: "users_nickname_key"})
		constraint, ok := uniqueViolation(err)
		if !ok {
			t.Fatalf("expected unique violation")
		}
		if constraint != "users_nickname_key" {
			t.Fatalf("unexpected constraint: %s", constraint)
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		if _, ok := uniqueViolation(&pq.Error{Code: "23503"}); ok {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if _, ok := uniqueViolation(fakeErr("pq: relation guesses does not exist")); ok {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get user: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("boom")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullStringPtr(t *testing.T) {
	t.Run("returns nil for null", func(t *testing.T) {
		if got := nullStringPtr(sql.NullString{}); got != nil {
			t.Fatalf("expected nil, got %q", *got)
		}
	})

	t.Run("round trips value", func(t *testing.T) {
		v := "https://img.example/team.png"
		got := nullStringPtr(toNullString(&v))
		if got == nil || *got != v {
			t.Fatalf("unexpected value: %v", got)
		}
	})
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
