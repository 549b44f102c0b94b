// Package dbtest provides a migrated, file-backed store for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm/logger"

	"starwars-api/db"
)

// New returns a migrated sqlite store in a temp dir, closed on cleanup.
func New(t testing.TB) db.Database {
	t.Helper()

	database, err := db.Connect(db.Options{
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
		LogLevel:   logger.Silent,
	})
	if err != nil {
		t.Fatalf("connect test store: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	return database
}
