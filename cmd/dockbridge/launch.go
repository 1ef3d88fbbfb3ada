// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dockbridge/internal/engine"

	"github.com/spf13/cobra"
)

var (
	launchName string
	launchPort string

	launchCmd = &cobra.Command{
		Use:   "launch IMAGE [COMMAND...]",
		Short: "Launch a detached container",
		Long: `Launch a detached container from an image.

The container name is mandatory. An optional port mapping of the form
hostPort:containerPort[/protocol] is passed through to the engine.
Any trailing arguments become the container command, verbatim.`,
		Example: `  dockbridge launch nginx:alpine --name web -p 8080:80
  dockbridge launch alpine:latest --name worker sleep 3600`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return runFailed(err)
			}

			req := engine.LaunchRequest{
				Image:       engine.ImageRef(args[0]),
				Name:        engine.ContainerName(launchName),
				PortMapping: engine.PortMapping(launchPort),
				Command:     args[1:],
			}

			confirmation, err := svc.LaunchContainer(cmd.Context(), req)
			if err != nil {
				return runFailed(err)
			}

			fmt.Println(SuccessStyle.Render("✓ ") + confirmation)
			return nil
		},
	}
)

func init() {
	launchCmd.Flags().StringVar(&launchName, "name", "", "container name (required)")
	launchCmd.Flags().StringVarP(&launchPort, "port", "p", "", "port mapping hostPort:containerPort[/protocol]")
	_ = launchCmd.MarkFlagRequired("name")
}
