package commands

import (
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/tapline/manaql/config"
	"github.com/tapline/manaql/db"
	"github.com/tapline/manaql/errors"
	"github.com/tapline/manaql/logger"
)

// openDatabase opens and migrates the card database. The --db flag wins over
// the configured path. Uses logger.Logger for db operations.
func openDatabase(cmd *cobra.Command) (*sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		if dbPath, err = config.DatabasePath(); err != nil {
			return nil, errors.Wrap(err, "failed to get database path")
		}
	}

	opts := db.Options{
		MaxVariations: cfg.Query.MaxVariations,
		CacheSize:     cfg.Query.CacheSize,
	}
	database, err := db.Open(dbPath, opts, logger.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", dbPath)
	}

	if err := db.Migrate(database, logger.Logger); err != nil {
		database.Close()
		return nil, errors.Wrapf(err, "failed to run migrations on %s", dbPath)
	}

	return database, nil
}
