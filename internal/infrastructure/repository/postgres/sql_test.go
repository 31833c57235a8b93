package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullHelpers(t *testing.T) {
	if got := nullIntPtr(sql.NullInt64{Int64: 3, Valid: true}); got == nil || *got != 3 {
		t.Fatalf("nullIntPtr valid = %v", got)
	}
	if got := nullIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("nullIntPtr null = %v, want nil", got)
	}
	if got := nullString(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Fatalf("nullString valid = %q", got)
	}
	if got := nullString(sql.NullString{}); got != "" {
		t.Fatalf("nullString null = %q, want empty", got)
	}
	if got := toNullInt(nil); got.Valid {
		t.Fatalf("toNullInt(nil) = %+v, want invalid", got)
	}
	v := 7
	if got := toNullInt(&v); !got.Valid || got.Int64 != 7 {
		t.Fatalf("toNullInt(7) = %+v", got)
	}
}
