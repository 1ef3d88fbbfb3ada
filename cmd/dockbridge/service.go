// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dockbridge/internal/config"
	"dockbridge/internal/engine"
	"dockbridge/internal/issue"

	"github.com/charmbracelet/log"
)

// buildService resolves the container engine from the --engine flag (falling
// back to the config) and wires it into an operations facade with the
// configured timeout and log level.
func buildService() (*engine.Service, error) {
	selected := cfg.ContainerEngine
	if engineFlag != "" {
		selected = config.ContainerEngine(engineFlag)
		if err := selected.Validate(); err != nil {
			return nil, err
		}
	}

	var (
		eng *engine.Engine
		err error
	)
	switch selected {
	case config.ContainerEngineAuto:
		eng, err = engine.AutoDetectEngine()
	case config.ContainerEngineDocker:
		eng, err = engine.NewEngine(engine.EngineTypeDocker)
	case config.ContainerEnginePodman:
		eng, err = engine.NewEngine(engine.EngineTypePodman)
	default:
		err = fmt.Errorf("unknown container engine: %s", selected)
	}
	if err != nil {
		return nil, decorateError(err)
	}

	timeout := cfg.CommandTimeout()
	if timeoutFlag > 0 {
		timeout = time.Duration(timeoutFlag) * time.Second
	}

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "dockbridge",
	})

	return engine.NewService(eng,
		engine.WithTimeout(timeout),
		engine.WithLogger(logger),
	), nil
}

// decorateError attaches an explain hint to engine failures so users can jump
// straight to the remediation guide for the failure kind.
func decorateError(err error) error {
	if err == nil {
		return nil
	}
	id := issue.ForError(err)
	entry := issue.Get(id)
	if entry == nil {
		return err
	}
	return issue.NewErrorContext().
		WithOperation("run container operation").
		WithSuggestion(fmt.Sprintf("Run 'dockbridge explain %s' for a remediation guide", entry.Name())).
		Wrap(err).
		BuildError()
}

// runFailed converts a failed operation error into an ExitError whose message
// carries the formatted suggestions and, in verbose mode, the error chain.
// fang prints the message once; the exit code stays non-zero.
func runFailed(err error) error {
	return &ExitError{Code: 1, Err: errors.New(formatErrorForDisplay(decorateError(err), verbose))}
}
