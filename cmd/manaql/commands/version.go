package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tapline/manaql/display"
	"github.com/tapline/manaql/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show manaql version information",
	Long:  `Display version, build time, commit hash, and platform information for the manaql binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		info := version.Get()

		if jsonOutput {
			if err := display.OutputJSON(info); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting JSON: %v\n", err)
			}
			return
		}
		fmt.Println(info.String())
		fmt.Printf("Commit: %s\n", info.Short())
		fmt.Printf("Platform: %s\n", info.Platform)
		fmt.Printf("Go: %s\n", info.GoVersion)
	},
}
