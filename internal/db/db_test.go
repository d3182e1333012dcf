package db

import (
	"context"
	"os"
	"testing"
)

// Integration test: needs a reachable Postgres. Skipped otherwise.
func TestConnectPostgresCreatesSchema(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	for _, table := range []string{"staff", "menu_items", "menu_keywords"} {
		var exists bool
		err := pool.QueryRow(context.Background(),
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table,
		).Scan(&exists)
		if err != nil {
			t.Fatalf("querying for table %s: %v", table, err)
		}
		if !exists {
			t.Errorf("expected table %s to exist after init", table)
		}
	}
}
