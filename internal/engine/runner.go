// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const (
	// timedOutExitCode is the sentinel exit code reported for killed-on-deadline
	// subprocesses, which have no meaningful engine exit status.
	timedOutExitCode = -1

	// killGracePeriod bounds how long Run waits for I/O pipes to drain after
	// the deadline fires and the child is killed. The runner never blocks the
	// caller beyond timeout + this grace.
	killGracePeriod = 3 * time.Second
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Outcome is the raw result of one subprocess execution. It is produced
	// once per execution and never reused; the classifier turns it into a
	// typed Result.
	Outcome struct {
		// ExitCode is the subprocess exit status, or timedOutExitCode when
		// the process was killed on deadline or never spawned.
		ExitCode int
		// Stdout is the fully captured standard output.
		Stdout []byte
		// Stderr is the fully captured standard error, kept separate from
		// stdout so the classifier can inspect engine diagnostics.
		Stderr []byte
		// TimedOut reports that the time budget expired and the child was
		// forcibly terminated. Partial output is discarded in that case.
		TimedOut bool
		// SpawnErr is set when the process could not be started at all
		// (binary absent, exec I/O failure). It is distinct from a non-zero
		// exit so the classifier can report EngineNotInstalled.
		SpawnErr error
	}
)

// execute spawns the engine binary with the given argument vector, captures
// stdout and stderr independently, and enforces the timeout. Arguments are
// always passed as a vector — never concatenated through a shell — so no
// injection is possible. A timeout of zero means no deadline.
func (e *Engine) execute(ctx context.Context, timeout time.Duration, args ...string) Outcome {
	if e.binaryPath == "" {
		return Outcome{
			ExitCode: timedOutExitCode,
			SpawnErr: fmt.Errorf("%s: %w", e.name, exec.ErrNotFound),
		}
	}

	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	program, argv := e.spawnVector(args)
	cmd := e.execCommand(runCtx, program, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// CommandContext kills the child when the deadline fires; WaitDelay bounds
	// the pipe-drain wait afterwards so a wedged grandchild holding the pipes
	// open cannot stall us either.
	cmd.WaitDelay = killGracePeriod

	err := cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		// The child was killed mid-write; whatever landed in the buffers is
		// unusable, so the outcome carries no output at all.
		return Outcome{ExitCode: timedOutExitCode, TimedOut: true}
	}

	out := Outcome{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		} else {
			out.ExitCode = timedOutExitCode
			out.SpawnErr = err
		}
	}
	return out
}

// spawnVector prepends the sandbox host-spawn prefix (flatpak-spawn --host,
// snap run --shell) when dockbridge itself runs inside an application sandbox
// and the engine binary lives on the host. Outside sandboxes it is the
// identity mapping.
func (e *Engine) spawnVector(args []string) (program string, argv []string) {
	if len(e.spawnPrefix) == 0 {
		return e.binaryPath, args
	}
	argv = append(argv, e.spawnPrefix[1:]...)
	argv = append(argv, e.binaryPath)
	argv = append(argv, args...)
	return e.spawnPrefix[0], argv
}
