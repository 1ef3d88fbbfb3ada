// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the engine-wide diagnostic report",
	Long: `Show the container engine's diagnostic report as free text.

The report is passed through verbatim; dockbridge does not parse it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return runFailed(err)
		}

		report, err := svc.EngineInfo(cmd.Context())
		if err != nil {
			return runFailed(err)
		}

		fmt.Print(report)
		return nil
	},
}
