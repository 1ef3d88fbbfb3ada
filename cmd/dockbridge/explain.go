// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dockbridge/internal/issue"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [FAILURE]",
	Short: "Show the remediation guide for a failure kind",
	Long: `Show the Markdown remediation guide for one of dockbridge's failure
kinds. Without an argument, lists the available guides.`,
	Example: `  dockbridge explain
  dockbridge explain engine-unreachable
  dockbridge explain name-conflict`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: issueNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(TitleStyle.Render("Available guides"))
			fmt.Println()
			for _, entry := range issue.Values() {
				fmt.Printf("  %s\n", CmdStyle.Render(entry.Name()))
			}
			fmt.Println()
			fmt.Println(SubtitleStyle.Render("Run 'dockbridge explain <name>' for the full guide"))
			return nil
		}

		entry := issue.GetByName(args[0])
		if entry == nil {
			return fmt.Errorf("unknown failure kind %q; run 'dockbridge explain' to list them", args[0])
		}

		rendered, err := entry.Render("dark")
		if err != nil {
			return fmt.Errorf("failed to render guide: %w", err)
		}
		fmt.Print(rendered)
		return nil
	},
}

// issueNames returns the catalog's short names for shell completion.
func issueNames() []string {
	entries := issue.Values()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
