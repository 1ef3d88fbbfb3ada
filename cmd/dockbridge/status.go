// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dockbridge/internal/engine"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show engine availability at a glance",
	Long: `Show the selected engine, its version, and the running container
count. The engine probe and the container listing run concurrently.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return runFailed(err)
		}

		eng := svc.Engine()
		fmt.Printf("%s: %s (%s)\n",
			CmdStyle.Render("Engine"), eng.Name(), eng.BinaryPath())

		if version, verr := eng.Version(cmd.Context()); verr == nil {
			fmt.Printf("%s: %s\n", CmdStyle.Render("Version"), version)
		}

		// One engine round-trip each; independent, so issue them together.
		results := svc.Join(cmd.Context(),
			engine.EngineInfoRequest{},
			engine.ListContainersRequest{},
		)

		infoRes, psRes := results[0], results[1]

		if infoRes.Failed() {
			fmt.Printf("%s: %s\n", CmdStyle.Render("Daemon"), ErrorStyle.Render("unreachable"))
		} else {
			fmt.Printf("%s: %s\n", CmdStyle.Render("Daemon"), SuccessStyle.Render("responding"))
		}

		if psRes.Failed() {
			return runFailed(psRes.Err)
		}
		fmt.Printf("%s: %d\n", CmdStyle.Render("Running containers"), len(psRes.Containers))
		return nil
	},
}
