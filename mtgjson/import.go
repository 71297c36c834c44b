// Package mtgjson imports card data in the MTGJSON AllCards shape: one JSON
// object mapping card name to card fields. Files run to hundreds of
// megabytes, so the decoder streams one card at a time instead of loading
// the whole document.
package mtgjson

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"github.com/tapline/manaql/errors"
)

// Card is the subset of MTGJSON card fields manaql stores.
type Card struct {
	Name     string  `json:"name"`
	ManaCost string  `json:"manaCost"`
	CMC      float64 `json:"cmc"`
}

// batchSize cards per transaction keeps memory flat and commits cheap.
const batchSize = 1000

// Import streams cards from r into the cards table, committing in batches.
// Returns the number of cards imported.
func Import(ctx context.Context, database *sql.DB, r io.Reader, logger *zap.SugaredLogger) (int, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return 0, errors.Wrap(err, "read document start")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return 0, errors.Newf("expected top-level object, got %v", tok)
	}

	imported := 0
	var tx *sql.Tx
	var stmt *sql.Stmt
	defer func() {
		if stmt != nil {
			stmt.Close()
		}
		if tx != nil {
			tx.Rollback()
		}
	}()

	for dec.More() {
		if err := ctx.Err(); err != nil {
			return imported, errors.Wrap(err, "import cancelled")
		}

		// Key is the card name; the value repeats it in the name field.
		if _, err := dec.Token(); err != nil {
			return imported, errors.Wrap(err, "read card key")
		}

		var card Card
		if err := dec.Decode(&card); err != nil {
			return imported, errors.Wrap(err, "decode card")
		}

		if tx == nil {
			if tx, err = database.BeginTx(ctx, nil); err != nil {
				return imported, errors.Wrap(err, "begin batch")
			}
			if stmt, err = tx.Prepare("INSERT INTO cards (name, mana_cost, cmc) VALUES (?, ?, ?)"); err != nil {
				return imported, errors.Wrap(err, "prepare insert")
			}
		}

		if _, err := stmt.Exec(card.Name, card.ManaCost, int(card.CMC)); err != nil {
			return imported, errors.Wrapf(err, "insert %q", card.Name)
		}
		imported++

		if imported%batchSize == 0 {
			stmt.Close()
			stmt = nil
			if err := tx.Commit(); err != nil {
				return imported, errors.Wrap(err, "commit batch")
			}
			tx = nil
			if logger != nil && imported%(batchSize*10) == 0 {
				logger.Infow("Import progress", "cards", imported)
			}
		}
	}

	if tx != nil {
		stmt.Close()
		stmt = nil
		if err := tx.Commit(); err != nil {
			return imported, errors.Wrap(err, "commit final batch")
		}
		tx = nil
	}

	if logger != nil {
		logger.Infow("Import complete", "cards", imported)
	}
	return imported, nil
}
