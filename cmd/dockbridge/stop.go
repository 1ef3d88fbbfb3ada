// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dockbridge/internal/engine"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop NAME",
	Short: "Stop and remove a container",
	Long: `Stop the named container and remove it afterwards.

Removal is best-effort: a container that stops but resists removal
still counts as a success. Stopping a name that does not exist is
treated as already done.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return runFailed(err)
		}

		confirmation, err := svc.StopContainer(cmd.Context(), engine.ContainerName(args[0]))
		if err != nil {
			return runFailed(err)
		}

		fmt.Println(SuccessStyle.Render("✓ ") + confirmation)
		return nil
	},
}
