package db_test

import (
	"context"
	"testing"

	"github.com/mind-engage/nihongo-exam/internal/db"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer dbh.Close()

	var n int
	if err := dbh.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary`).Scan(&n); err != nil {
		t.Fatalf("vocabulary table missing: %v", err)
	}
	if n != 0 {
		t.Fatalf("rows = %d", n)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := db.Open(context.Background(), db.Driver("oracle"), ""); err == nil {
		t.Fatal("expected error")
	}
}
