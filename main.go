// SPDX-License-Identifier: MPL-2.0

// dockbridge is a thin command layer over locally installed Docker and
// Podman CLIs.
package main

import cmd "dockbridge/cmd/dockbridge"

func main() {
	cmd.Execute()
}
