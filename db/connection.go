// Package db opens the manaql SQLite card database with the mana comparison
// functions registered as SQL functions, so queries can filter on cost
// payability directly: SELECT name FROM cards WHERE mana_le(mana_cost, '{2}{W}').
package db

import (
	"database/sql"
	"sync"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/tapline/manaql/errors"
)

// driverName is the mana-aware SQLite driver registered on first Open.
const driverName = "sqlite3_mana"

var registerOnce sync.Once

// Options tune the SQL function guards. Zero values fall back to the
// package defaults documented on Configure.
type Options struct {
	// MaxVariations caps the product of both operands' interpretation
	// counts in a comparison. 0 keeps the previous (or default) cap;
	// negative disables the guard.
	MaxVariations int

	// CacheSize is the parsed-cost LRU capacity. 0 keeps the current cache.
	CacheSize int
}

// Open opens the SQLite database at path with the mana functions available.
// If logger is provided, logs database operations; otherwise operates silently.
func Open(path string, opts Options, logger *zap.SugaredLogger) (*sql.DB, error) {
	if err := Configure(opts); err != nil {
		return nil, err
	}

	registerOnce.Do(func() {
		sql.Register(driverName, &sqlite3.SQLiteDriver{
			ConnectHook: registerManaFunctions,
		})
	})

	if logger != nil {
		logger.Debugw("Opening database", "path", path)
	}
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// Enable WAL mode for concurrent reads during writes
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to enable WAL mode")
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}

	// Set busy timeout to 5 seconds
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to set busy timeout")
	}

	if logger != nil {
		logger.Infow("Database opened",
			"path", path,
			"wal_mode", true,
			"max_variations", currentMaxVariations(),
		)
	}

	return db, nil
}
