// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List running containers",
	Long: `List running containers as reported by the container engine.

Each line shows the container ID, image, name, and status. An empty
list is a normal outcome, not an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return runFailed(err)
		}

		containers, err := svc.ListContainers(cmd.Context())
		if err != nil {
			return runFailed(err)
		}

		if len(containers) == 0 {
			fmt.Println(SubtitleStyle.Render("No running containers"))
			return nil
		}

		fmt.Printf("%s\t%s\t%s\t%s\n",
			TitleStyle.Render("ID"),
			TitleStyle.Render("IMAGE"),
			TitleStyle.Render("NAME"),
			TitleStyle.Render("STATUS"))
		for _, c := range containers {
			fmt.Printf("%s\t%s\t%s\t%s\n", c.ID, c.Image, CmdStyle.Render(c.Name), c.Status)
		}
		return nil
	},
}
