// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"
)

const (
	// FailureEngineNotInstalled means the engine binary could not be spawned at all.
	FailureEngineNotInstalled FailureKind = "engine_not_installed"
	// FailureEngineUnreachable means the binary ran but could not reach its daemon.
	FailureEngineUnreachable FailureKind = "engine_unreachable"
	// FailureNameConflict means the requested container name is already taken.
	FailureNameConflict FailureKind = "name_conflict"
	// FailureImageNotFound means the image could not be resolved or pulled.
	FailureImageNotFound FailureKind = "image_not_found"
	// FailureTimeout means the subprocess exceeded its time budget and was killed.
	FailureTimeout FailureKind = "timeout"
	// FailureMalformedOutput means the engine exited cleanly but produced
	// output the classifier cannot accept.
	FailureMalformedOutput FailureKind = "malformed_output"
	// FailureUnknown is the catch-all for unrecognized engine failures; the
	// raw stderr text is preserved in the error message.
	FailureUnknown FailureKind = "unknown"
)

// Sentinel errors, one per failure kind. DomainError unwraps to these so
// callers can branch with errors.Is without string matching.
var (
	ErrEngineNotInstalled = errors.New("container engine not installed")
	ErrEngineUnreachable  = errors.New("container engine unreachable")
	ErrNameConflict       = errors.New("container name already in use")
	ErrImageNotFound      = errors.New("container image not found")
	ErrTimeout            = errors.New("engine call timed out")
	ErrMalformedOutput    = errors.New("malformed engine output")
	ErrUnknownFailure     = errors.New("unknown engine failure")

	// ErrNoEngineAvailable is the sentinel wrapped by EngineNotAvailableError.
	ErrNoEngineAvailable = errors.New("no container engine available")
)

type (
	// FailureKind enumerates the closed set of failure categories a container
	// operation can report. Every subprocess failure is mapped onto exactly
	// one kind by the classifier.
	FailureKind string

	// DomainError is the single error type crossing the package boundary for
	// operation failures. It pairs a FailureKind with the diagnostic text
	// captured from the engine (or synthesized by the runner).
	DomainError struct {
		Kind    FailureKind
		Message string
	}

	// EngineNotAvailableError is returned by engine construction when neither
	// the preferred engine nor its fallback can be used.
	EngineNotAvailableError struct {
		Engine string
		Reason string
	}
)

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the sentinel for the error's kind so callers can use
// errors.Is for programmatic detection.
func (e *DomainError) Unwrap() error {
	switch e.Kind {
	case FailureEngineNotInstalled:
		return ErrEngineNotInstalled
	case FailureEngineUnreachable:
		return ErrEngineUnreachable
	case FailureNameConflict:
		return ErrNameConflict
	case FailureImageNotFound:
		return ErrImageNotFound
	case FailureTimeout:
		return ErrTimeout
	case FailureMalformedOutput:
		return ErrMalformedOutput
	default:
		return ErrUnknownFailure
	}
}

func newDomainError(kind FailureKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *EngineNotAvailableError) Error() string {
	return fmt.Sprintf("container engine %q is not available: %s", e.Engine, e.Reason)
}

// Unwrap returns ErrNoEngineAvailable for errors.Is() compatibility.
func (e *EngineNotAvailableError) Unwrap() error { return ErrNoEngineAvailable }
