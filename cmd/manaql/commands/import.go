package commands

import (
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tapline/manaql/errors"
	"github.com/tapline/manaql/logger"
	"github.com/tapline/manaql/mtgjson"
)

// ImportCmd represents the import command
var ImportCmd = &cobra.Command{
	Use:   "import CARDS_FILE",
	Short: "Load an MTGJSON AllCards file into the card database",
	Long: `Import card data from an MTGJSON AllCards-style JSON file.

The file is a single object mapping card name to card fields; only name,
manaCost, and cmc are stored. Import streams the file, so arbitrarily large
card dumps work with flat memory.

Example:
  manaql import AllCards.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImportCommand,
}

func runImportCommand(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", args[0])
	}
	defer f.Close()

	database, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	started := time.Now()
	count, err := mtgjson.Import(cmd.Context(), database, f, logger.Logger)
	if err != nil {
		return errors.Wrapf(err, "import failed after %d cards", count)
	}

	pterm.Success.Printf("Imported %d cards in %s\n", count, time.Since(started).Round(time.Millisecond))
	return nil
}
