// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ContainerEngineDocker uses Docker as the container engine.
	ContainerEngineDocker ContainerEngine = "docker"
	// ContainerEnginePodman uses Podman as the container engine.
	ContainerEnginePodman ContainerEngine = "podman"
	// ContainerEngineAuto probes for an installed engine, Docker first.
	ContainerEngineAuto ContainerEngine = "auto"
)

var (
	// ErrInvalidContainerEngine is returned when a ContainerEngine value is not recognized.
	ErrInvalidContainerEngine = errors.New("invalid container engine")
	// ErrInvalidTimeout is returned when command_timeout_seconds is not positive.
	ErrInvalidTimeout = errors.New("invalid command timeout")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ContainerEngine specifies which container engine to use.
	ContainerEngine string

	// InvalidContainerEngineError is returned when a ContainerEngine value is not recognized.
	// It wraps ErrInvalidContainerEngine for errors.Is() compatibility.
	InvalidContainerEngineError struct {
		Value ContainerEngine
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ContainerEngine selects "docker", "podman", or "auto"
		ContainerEngine ContainerEngine `toml:"container_engine" mapstructure:"container_engine"`
		// CommandTimeoutSeconds bounds each engine subprocess call
		CommandTimeoutSeconds int `toml:"command_timeout_seconds" mapstructure:"command_timeout_seconds"`
		// UI configures the user interface
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables full error chains and debug logging
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}
)

// Validate checks that the engine value is one of the recognized constants.
func (e ContainerEngine) Validate() error {
	switch e {
	case ContainerEngineDocker, ContainerEnginePodman, ContainerEngineAuto:
		return nil
	default:
		return &InvalidContainerEngineError{Value: e}
	}
}

func (e *InvalidContainerEngineError) Error() string {
	return fmt.Sprintf("invalid container engine %q (must be %q, %q, or %q)",
		e.Value, ContainerEngineDocker, ContainerEnginePodman, ContainerEngineAuto)
}

// Unwrap returns ErrInvalidContainerEngine for errors.Is() compatibility.
func (e *InvalidContainerEngineError) Unwrap() error {
	return ErrInvalidContainerEngine
}

// Validate checks all config fields, collecting every violation rather than
// stopping at the first.
func (c *Config) Validate() error {
	var fieldErrs []error

	if err := c.ContainerEngine.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if c.CommandTimeoutSeconds <= 0 {
		fieldErrs = append(fieldErrs,
			fmt.Errorf("%w: command_timeout_seconds must be positive, got %d",
				ErrInvalidTimeout, c.CommandTimeoutSeconds))
	}

	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig plus the collected field errors so both
// errors.Is(err, ErrInvalidConfig) and field-level checks work.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ContainerEngine:       ContainerEngineAuto,
		CommandTimeoutSeconds: 30,
		UI: UIConfig{
			Verbose: false,
		},
	}
}
