// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"dockbridge/internal/platform"
)

const (
	// EngineTypeDocker selects the Docker CLI.
	EngineTypeDocker EngineType = "docker"
	// EngineTypePodman selects the Podman CLI.
	EngineTypePodman EngineType = "podman"
)

// lookPath resolves an engine binary on the search path. Variable so tests
// can simulate hosts with or without an engine installed.
var lookPath = exec.LookPath

type (
	// EngineType identifies the container engine CLI to drive.
	EngineType string

	// Engine binds one container engine CLI binary. The zero binaryPath means
	// the binary was not found on the search path; operations on such an
	// engine classify as EngineNotInstalled instead of panicking.
	Engine struct {
		name        string
		binaryPath  string
		spawnPrefix []string
		execCommand ExecCommandFunc
	}

	// EngineOption configures an Engine.
	EngineOption func(*Engine)
)

// String returns the string representation of the EngineType.
func (t EngineType) String() string { return string(t) }

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) EngineOption {
	return func(e *Engine) {
		e.execCommand = fn
	}
}

// WithBinaryPath overrides the binary path resolved via the search path.
func WithBinaryPath(path string) EngineOption {
	return func(e *Engine) {
		e.binaryPath = path
	}
}

// WithSpawnPrefix overrides the sandbox host-spawn vector. An empty prefix
// disables sandbox indirection regardless of the detected environment.
func WithSpawnPrefix(prefix []string) EngineOption {
	return func(e *Engine) {
		e.spawnPrefix = prefix
	}
}

// newEngine resolves the binary for the named engine CLI and applies the
// process-wide sandbox spawn prefix, if any.
func newEngine(typ EngineType, opts ...EngineOption) *Engine {
	path, _ := lookPath(string(typ))
	e := &Engine{
		name:        string(typ),
		binaryPath:  path,
		spawnPrefix: platform.HostSpawnVector(),
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDockerEngine creates an engine bound to the Docker CLI.
func NewDockerEngine(opts ...EngineOption) *Engine {
	return newEngine(EngineTypeDocker, opts...)
}

// NewPodmanEngine creates an engine bound to the Podman CLI.
func NewPodmanEngine(opts ...EngineOption) *Engine {
	return newEngine(EngineTypePodman, opts...)
}

// Name returns the engine name (docker or podman).
func (e *Engine) Name() string {
	return e.name
}

// BinaryPath returns the resolved engine binary path, empty when the binary
// is absent from the search path.
func (e *Engine) BinaryPath() string {
	return e.binaryPath
}

// Installed reports whether the engine binary was found on the search path.
func (e *Engine) Installed() bool {
	return e.binaryPath != ""
}

// Available reports whether the engine binary exists and its daemon answers
// a cheap version probe.
func (e *Engine) Available() bool {
	if !e.Installed() {
		return false
	}
	out := e.execute(context.Background(), availabilityProbeTimeout, versionArgs()...)
	return out.SpawnErr == nil && !out.TimedOut && out.ExitCode == 0
}

// Version returns the engine server version.
func (e *Engine) Version(ctx context.Context) (string, error) {
	out := e.execute(ctx, availabilityProbeTimeout, versionArgs()...)
	switch {
	case out.SpawnErr != nil:
		return "", newDomainError(FailureEngineNotInstalled, out.SpawnErr.Error())
	case out.TimedOut:
		return "", newDomainError(FailureTimeout, fmt.Sprintf("%s version probe timed out", e.name))
	case out.ExitCode != 0:
		return "", newDomainError(FailureEngineUnreachable, string(out.Stderr))
	}
	return strings.TrimSpace(string(out.Stdout)), nil
}

// NewEngine creates a container engine based on preference, falling back to
// the other engine when the preferred one is not available.
func NewEngine(preferred EngineType, opts ...EngineOption) (*Engine, error) {
	var fallback EngineType
	switch preferred {
	case EngineTypeDocker:
		fallback = EngineTypePodman
	case EngineTypePodman:
		fallback = EngineTypeDocker
	default:
		return nil, fmt.Errorf("unknown container engine type: %s", preferred)
	}

	if e := newEngine(preferred, opts...); e.Available() {
		return e, nil
	}
	if e := newEngine(fallback, opts...); e.Available() {
		return e, nil
	}
	return nil, &EngineNotAvailableError{
		Engine: string(preferred),
		Reason: fmt.Sprintf("%s is not installed or not accessible, and the %s fallback is also not available", preferred, fallback),
	}
}

// AutoDetectEngine tries to find an available container engine without a
// preference. Docker is tried first, then Podman.
func AutoDetectEngine(opts ...EngineOption) (*Engine, error) {
	if docker := NewDockerEngine(opts...); docker.Available() {
		return docker, nil
	}
	if podman := NewPodmanEngine(opts...); podman.Available() {
		return podman, nil
	}
	return nil, &EngineNotAvailableError{
		Engine: "any",
		Reason: "no container engine (docker or podman) is available on this system",
	}
}
