package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := Open(dbPath, Options{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, Migrate(database, nil))
	return database
}

func TestOpen(t *testing.T) {
	t.Run("opens database successfully", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")

		database, err := Open(dbPath, Options{}, nil)
		require.NoError(t, err)
		require.NotNil(t, database)
		defer database.Close()

		// Verify WAL mode enabled
		var journalMode string
		err = database.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		assert.Equal(t, "wal", journalMode)

		// Verify foreign keys enabled
		var foreignKeys int
		err = database.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys)
		require.NoError(t, err)
		assert.Equal(t, 1, foreignKeys)
	})
}

func TestMigrate(t *testing.T) {
	database := openTestDB(t)

	// Verify cards and schema_migrations tables exist
	for _, table := range []string{"schema_migrations", "cards"} {
		var count int
		err := database.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist after migrations", table)
	}

	// Re-running migrations is a no-op
	require.NoError(t, Migrate(database, nil))
}
