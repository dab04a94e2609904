package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error should never be a unique violation")
	}

	pgxErr := &pgconn.PgError{Code: "23505", ConstraintName: "cart_items_user_product_key"}
	if !IsUniqueViolation(pgxErr, "") {
		t.Fatal("pgx 23505 should be detected")
	}
	if !IsUniqueViolation(pgxErr, "cart_items_user_product_key") {
		t.Fatal("pgx 23505 with matching constraint should be detected")
	}
	if IsUniqueViolation(pgxErr, "reviews_product_user_key") {
		t.Fatal("pgx 23505 with different constraint should not match")
	}

	wrapped := fmt.Errorf("insert cart line: %w", pgxErr)
	if !IsUniqueViolation(wrapped, "cart_items_user_product_key") {
		t.Fatal("wrapped pgx error should be detected")
	}

	pqErr := &pq.Error{Code: "23505", Constraint: "reviews_product_user_key"}
	if !IsUniqueViolation(pqErr, "reviews_product_user_key") {
		t.Fatal("pq 23505 should be detected")
	}

	if !IsUniqueViolation(errors.New("UNIQUE constraint failed: cart_items.user_id, cart_items.product_id"), "") {
		t.Fatal("sqlite message should be detected")
	}
	if IsUniqueViolation(errors.New("connection refused"), "") {
		t.Fatal("unrelated error should not be a unique violation")
	}
}
