package commands

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tapline/manaql/config"
	"github.com/tapline/manaql/display"
	"github.com/tapline/manaql/errors"
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query [SQL]",
	Short: "Run SQL with the mana functions registered",
	Long: `Execute a SQL statement against the card database with the mana
comparison functions available. With no argument, reads statements from
stdin one line at a time.

Examples:
  manaql query "SELECT name FROM cards WHERE mana_lt('{5/W}', mana_cost)"
  manaql query "SELECT name, mana_cost FROM cards WHERE mana_le(mana_cost, '{2}{W}{W}')"
  manaql query                       # interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQueryCommand,
}

func runQueryCommand(cmd *cobra.Command, args []string) error {
	database, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if len(args) == 1 {
		return runQuery(database, args[0], cfg.Query.MaxRows, jsonOutput)
	}

	// REPL: one statement per line, empty line or EOF ends the session.
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "manaql> ")
		if !scanner.Scan() {
			break
		}
		stmt := strings.TrimSpace(scanner.Text())
		if stmt == "" || stmt == "exit" || stmt == "quit" {
			break
		}
		if err := runQuery(database, stmt, cfg.Query.MaxRows, jsonOutput); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	return scanner.Err()
}

func runQuery(database *sql.DB, query string, maxRows int, jsonOutput bool) error {
	started := time.Now()
	rows, err := database.Query(query)
	if err != nil {
		return errors.Wrap(err, "query failed")
	}
	defer rows.Close()

	rs, err := collectRows(rows, maxRows)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	if jsonOutput {
		return display.OutputJSON(rs)
	}
	if len(rs.Rows) > 0 {
		if err := display.RenderTable(rs); err != nil {
			return err
		}
	}
	pterm.Info.Printf("Fetched %d rows in %s\n", len(rs.Rows), elapsed.Round(time.Microsecond))
	return nil
}

// collectRows fetches up to maxRows rows with every column rendered as text.
func collectRows(rows *sql.Rows, maxRows int) (*display.ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "read columns")
	}

	rs := &display.ResultSet{Columns: columns}
	values := make([]any, len(columns))
	scan := make([]any, len(columns))
	for i := range values {
		scan[i] = &values[i]
	}

	for rows.Next() {
		if maxRows > 0 && len(rs.Rows) >= maxRows {
			rs.Truncated = true
			break
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate rows")
	}
	return rs, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
