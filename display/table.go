// Package display renders query results for the terminal.
package display

import (
	"github.com/pterm/pterm"
)

// ResultSet is a fully fetched query result ready for rendering.
type ResultSet struct {
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Truncated bool       `json:"truncated,omitempty"`
}

// RenderTable prints the result set as a boxed table with a header row.
func RenderTable(rs *ResultSet) error {
	data := make(pterm.TableData, 0, len(rs.Rows)+1)
	data = append(data, rs.Columns)
	data = append(data, rs.Rows...)

	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		return err
	}
	if rs.Truncated {
		pterm.Warning.Println("Result truncated by query.max_rows")
	}
	return nil
}
