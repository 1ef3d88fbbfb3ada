// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"dockbridge/internal/platform"
)

const (
	// DefaultTimeout is the per-call time budget for engine subprocesses.
	DefaultTimeout = 30 * time.Second

	// availabilityProbeTimeout bounds the cheap version probe so detection on
	// a host with a wedged daemon stays snappy.
	availabilityProbeTimeout = 10 * time.Second
)

type (
	// Service is the container operations facade: one public operation per
	// request kind, each composing argument building, subprocess execution
	// with a bounded time budget, and outcome classification. Service holds
	// no mutable state between calls; concurrent use needs no locking.
	Service struct {
		engine  *Engine
		timeout time.Duration
		logger  *log.Logger
	}

	// ServiceOption configures a Service.
	ServiceOption func(*Service)
)

// WithTimeout overrides the per-call time budget for engine subprocesses.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithLogger sets the logger used for operation tracing and absorbed
// best-effort failures.
func WithLogger(logger *log.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a facade bound to the given engine.
func NewService(e *Engine, opts ...ServiceOption) *Service {
	s := &Service{
		engine:  e,
		timeout: DefaultTimeout,
		logger:  log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the engine the facade drives.
func (s *Service) Engine() *Engine {
	return s.engine
}

// ListContainers returns the running containers, in engine output order.
// The list may be empty.
func (s *Service) ListContainers(ctx context.Context) ([]ContainerSummary, error) {
	res := s.Do(ctx, ListContainersRequest{})
	return res.Containers, res.Err
}

// EngineInfo returns the engine-wide diagnostic report as free text.
func (s *Service) EngineInfo(ctx context.Context) (string, error) {
	res := s.Do(ctx, EngineInfoRequest{})
	return res.Report, res.Err
}

// LaunchContainer launches a detached container and returns a confirmation
// containing the container name.
func (s *Service) LaunchContainer(ctx context.Context, req LaunchRequest) (string, error) {
	res := s.Do(ctx, req)
	return res.Confirmation, res.Err
}

// StopContainer stops the named container and then removes it best-effort.
// The confirmation contains the container name; a failed removal never
// downgrades a successful stop.
func (s *Service) StopContainer(ctx context.Context, name ContainerName) (string, error) {
	res := s.Do(ctx, StopRequest{Name: name})
	return res.Confirmation, res.Err
}

// HostSystemInfo returns the local host report (OS, architecture, family).
// It is answered from the execution environment without spawning the engine
// and carries no time budget.
func (s *Service) HostSystemInfo() (string, error) {
	res := s.Do(context.Background(), HostSystemInfoRequest{})
	return res.Report, res.Err
}

// Do dispatches one request through build → execute → classify and returns
// its Result. Every request yields exactly one Result. Each call owns its own
// subprocess and captured buffers, so independent calls can run concurrently
// without coordination.
func (s *Service) Do(ctx context.Context, req Request) Result {
	if req.Kind() == OpHostSystemInfo {
		// Local path: synthesized report, no subprocess, no timeout.
		return Classify(req, Outcome{Stdout: []byte(platform.SystemReport())})
	}

	if v, ok := req.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return Result{Kind: req.Kind(), Err: err}
		}
	}

	start := time.Now()
	out := s.engine.execute(ctx, s.timeout, BuildArgs(req)...)
	res := Classify(req, out)

	if req.Kind() == OpStop && !res.Failed() {
		s.removeBestEffort(ctx, req.(StopRequest).Name)
	}

	s.logger.Debug("engine operation finished",
		"op", res.Kind,
		"engine", s.engine.Name(),
		"exit_code", out.ExitCode,
		"timed_out", out.TimedOut,
		"failed", res.Failed(),
		"elapsed", time.Since(start))
	return res
}

// removeBestEffort issues `rm <name>` after a successful stop. Its outcome is
// logged and otherwise ignored: partial failure of the removal step is
// absorbed locally, never surfaced to the caller.
func (s *Service) removeBestEffort(ctx context.Context, name ContainerName) {
	out := s.engine.execute(ctx, s.timeout, removeArgs(name)...)
	if out.SpawnErr != nil || out.TimedOut || out.ExitCode != 0 {
		s.logger.Debug("best-effort container removal failed",
			"name", name,
			"exit_code", out.ExitCode,
			"stderr", string(out.Stderr))
	}
}
