// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"runtime"
)

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Family returns the broad OS family for the given GOOS value: "windows" for
// Windows, "unix" for everything Go supports besides it.
func Family(goos string) string {
	if goos == Windows {
		return Windows
	}
	return "unix"
}

// SystemReport returns the host system report: operating system, CPU
// architecture, and OS family, read directly from the execution environment.
// It never consults the container engine.
func SystemReport() string {
	return fmt.Sprintf(
		"System Information:\nOperating System: %s\nArchitecture: %s\nFamily: %s\n",
		runtime.GOOS, runtime.GOARCH, Family(runtime.GOOS))
}
