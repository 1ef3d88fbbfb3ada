// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

// Sandbox type constants.
const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox environment.
	SandboxSnap SandboxType = "snap"
)

// detectOnce caches the sandbox detection result for the lifetime of the
// process; the sandbox type is immutable while the process lives.
//
// INVARIANT: detectSandboxFrom MUST NOT panic — sync.OnceValue would
// propagate the panic on every subsequent call.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// DetectSandbox returns the type of application sandbox the current process
// is running in. The result is cached after the first call.
//
// Detection methods:
//   - Flatpak: existence of /.flatpak-info
//   - Snap: presence of the SNAP_NAME environment variable
func DetectSandbox() SandboxType {
	return detectOnce()
}

// IsInSandbox returns true if the current process runs inside a sandbox.
func IsInSandbox() bool {
	return DetectSandbox() != SandboxNone
}

// HostSpawnVector returns the command prefix needed to execute a host binary
// from inside the current sandbox (the engine CLI lives on the host, not in
// the sandbox). It returns nil outside sandboxes.
func HostSpawnVector() []string {
	return SpawnVectorFor(DetectSandbox())
}

// SpawnVectorFor returns the host-spawn command prefix for a given sandbox
// type. This is a pure function independent of the cached detection state,
// making it directly testable without process-wide side effects.
func SpawnVectorFor(st SandboxType) []string {
	switch st {
	case SandboxFlatpak:
		return []string{"flatpak-spawn", "--host"}
	case SandboxSnap:
		return []string{"snap", "run", "--shell"}
	default:
		return nil
	}
}

// detectSandboxFrom performs sandbox detection using the provided lookup
// functions. Accepting lookupEnv and statFile as parameters allows tests to
// inject custom behavior without mutating process-wide state.
func detectSandboxFrom(lookupEnv func(string) string, statFile func(string) error) SandboxType {
	// Flatpak takes precedence; /.flatpak-info is always present inside
	// Flatpak sandboxes.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}
	if lookupEnv("SNAP_NAME") != "" {
		return SandboxSnap
	}
	return SandboxNone
}

// statFile checks for the existence of a file at the given path, wrapping
// os.Stat to match the func(string) error signature detectSandboxFrom takes.
func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
