package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tapline/manaql/cmd/manaql/commands"
	"github.com/tapline/manaql/config"
	"github.com/tapline/manaql/logger"
)

var rootCmd = &cobra.Command{
	Use:   "manaql",
	Short: "manaql - Query Magic cards by mana cost payability",
	Long: `manaql - Mana cost comparison over a SQLite card database.

Mana costs are ambiguous: a hybrid symbol like {R/W} can be paid two ways.
manaql compares costs existentially across all concrete interpretations and
exposes the relations as SQL functions (mana_eq, mana_lt, mana_le, mana_gt,
mana_ge, mana_min, mana_max, mana_variations).

Available commands:
  import - Load an MTGJSON AllCards file into the card database
  query  - Run SQL with the mana functions registered (REPL without argument)
  cost   - Inspect a mana cost: variations, totals, interpretations

Examples:
  manaql import AllCards.json
  manaql query "SELECT name FROM cards WHERE mana_lt(mana_cost, '{5/W}')"
  manaql cost '{W/R/G/B/U/10}{W/R/G/B/U/10}'`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if err := logger.Initialize(jsonOutput || cfg.Log.JSON, verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database path (overrides config)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.CostCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
