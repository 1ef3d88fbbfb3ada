// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dockbridge/internal/engine"

	"github.com/spf13/cobra"
)

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show host system information",
	Long: `Show the host operating system, CPU architecture, and OS family.

The report is read from the local execution environment; the container
engine is never consulted and no subprocess is spawned, so this works
even on hosts without any engine installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The host info path never reaches the engine binary, so bind the
		// facade to an unprobed engine instead of requiring an available one.
		svc := engine.NewService(engine.NewDockerEngine())

		report, err := svc.HostSystemInfo()
		if err != nil {
			return runFailed(err)
		}

		fmt.Print(report)
		return nil
	},
}
