package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tapline/manaql/display"
	"github.com/tapline/manaql/mana"
)

var costShowInterpretations bool

// CostCmd represents the cost command
var CostCmd = &cobra.Command{
	Use:   "cost COST...",
	Short: "Inspect a mana cost: variations, totals, interpretations",
	Long: `Parse one or more mana cost strings and report the number of
concrete interpretations and the minimum and maximum mana totals.

Examples:
  manaql cost '{2}{W}{W}'
  manaql cost --interpretations '{W/R/G/B/U/10}{W/R/G/B/U/10}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCostCommand,
}

func init() {
	CostCmd.Flags().BoolVarP(&costShowInterpretations, "interpretations", "i", false,
		"Enumerate every concrete interpretation")
}

// costReport is the JSON shape of one inspected cost.
type costReport struct {
	Cost            string           `json:"cost"`
	Groups          int              `json:"groups"`
	Variations      int              `json:"variations"`
	MinTotal        int              `json:"min_total"`
	MaxTotal        int              `json:"max_total"`
	Interpretations []map[string]int `json:"interpretations,omitempty"`
}

func runCostCommand(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var reports []costReport
	for _, text := range args {
		cost := mana.ParseCost(text)
		report := costReport{
			Cost:       cost.String(),
			Groups:     cost.NumGroups(),
			Variations: cost.NumVariations(),
			MinTotal:   cost.MinTotal(),
			MaxTotal:   cost.MaxTotal(),
		}
		if costShowInterpretations {
			for _, in := range cost.Interpretations() {
				counts := make(map[string]int)
				for k, v := range in.Counts() {
					counts[string(k)] = v
				}
				report.Interpretations = append(report.Interpretations, counts)
			}
		}
		reports = append(reports, report)
	}

	if jsonOutput {
		return display.OutputJSON(reports)
	}

	for _, report := range reports {
		rs := &display.ResultSet{
			Columns: []string{"cost", "groups", "variations", "min", "max"},
			Rows: [][]string{{
				report.Cost,
				fmt.Sprint(report.Groups),
				fmt.Sprint(report.Variations),
				fmt.Sprint(report.MinTotal),
				fmt.Sprint(report.MaxTotal),
			}},
		}
		if err := display.RenderTable(rs); err != nil {
			return err
		}
		for i, counts := range report.Interpretations {
			pterm.Printf("  %3d: %s\n", i+1, formatCounts(counts))
		}
	}
	return nil
}

// formatCounts renders a multiset compactly, keys in display order.
func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "(free)"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keyRank(keys[i]) < keyRank(keys[j]) })

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func keyRank(k string) int {
	for i, key := range mana.Keys {
		if string(key) == k {
			return i
		}
	}
	return len(mana.Keys)
}
