package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("sql.ErrNoRows should be not-found")
	}
	if !isNotFound(fmt.Errorf("wrapped: %w", sql.ErrNoRows)) {
		t.Fatalf("wrapped sql.ErrNoRows should be not-found")
	}
	if isNotFound(fmt.Errorf("boom")) {
		t.Fatalf("arbitrary error should not be not-found")
	}
}

func TestIsCheckViolation(t *testing.T) {
	t.Parallel()

	if !isCheckViolation(&pq.Error{Code: pqCheckViolation}) {
		t.Fatalf("23514 should be a check violation")
	}
	if isCheckViolation(&pq.Error{Code: pqForeignKeyViolation}) {
		t.Fatalf("23503 is not a check violation")
	}
	if isCheckViolation(fmt.Errorf("boom")) {
		t.Fatalf("non-pq error is not a check violation")
	}
}

func TestNullTimeRoundTrip(t *testing.T) {
	t.Parallel()

	if nullTime(nil).Valid {
		t.Fatalf("nil time should map to invalid NullTime")
	}
	now := time.Now()
	nt := nullTime(&now)
	if !nt.Valid || !nt.Time.Equal(now) {
		t.Fatalf("unexpected NullTime: %+v", nt)
	}
	if got := timePtr(nt); got == nil || !got.Equal(now) {
		t.Fatalf("unexpected time pointer: %v", got)
	}
	if timePtr(sql.NullTime{}) != nil {
		t.Fatalf("invalid NullTime should map to nil")
	}
}
