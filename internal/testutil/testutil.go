// Package testutil provides shared test helpers.
package testutil

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"nexus-backend-go/internal/db"
	"nexus-backend-go/internal/migrations"
	"nexus-backend-go/internal/store"
)

// NewStore opens a migrated SQLite database in a temp dir. It is closed
// when the test ends.
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nexus-test.db")
	conn, err := db.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := migrations.Apply(conn, zap.NewNop()); err != nil {
		_ = conn.Close()
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return store.New(conn)
}
