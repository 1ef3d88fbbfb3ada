// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Operation kinds, one per facade operation.
const (
	OpListContainers OpKind = "list_containers"
	OpEngineInfo     OpKind = "engine_info"
	OpLaunch         OpKind = "launch_container"
	OpStop           OpKind = "stop_container"
	OpHostSystemInfo OpKind = "host_system_info"
)

// Sentinel errors wrapped by the typed request validation errors.
var (
	ErrInvalidContainerName = errors.New("invalid container name")
	ErrInvalidImageRef      = errors.New("invalid image reference")
	ErrInvalidPortMapping   = errors.New("invalid port mapping")
	ErrInvalidLaunchRequest = errors.New("invalid launch request")
)

type (
	// OpKind identifies which facade operation a Request or Result belongs to.
	OpKind string

	// Request is the closed set of operations the facade accepts. It is a
	// sealed interface: the five request types below are the only variants,
	// which keeps the classifier's mapping exhaustive.
	Request interface {
		Kind() OpKind
		sealedRequest()
	}

	// ContainerName identifies a container by its user-assigned name.
	// A valid name must be non-empty and not whitespace-only.
	ContainerName string

	// InvalidContainerNameError is returned when a ContainerName is empty or
	// whitespace-only.
	InvalidContainerNameError struct {
		Value ContainerName
	}

	// ImageRef is an image reference as accepted by the engine CLI
	// (e.g. "nginx:alpine", "ghcr.io/org/app@sha256:..."). A valid reference
	// must be non-empty and not whitespace-only.
	ImageRef string

	// InvalidImageRefError is returned when an ImageRef is empty or
	// whitespace-only.
	InvalidImageRefError struct {
		Value ImageRef
	}

	// PortMapping is a "hostPort:containerPort[/protocol]" mapping passed
	// verbatim to the engine's -p flag. The zero value ("") is valid and
	// means no port is published.
	PortMapping string

	// InvalidPortMappingError is returned when a non-empty PortMapping does
	// not parse as numeric host and container ports.
	InvalidPortMappingError struct {
		Value  PortMapping
		Reason string
	}

	// ListContainersRequest asks for the running containers, parsed from the
	// engine's tab-separated ps table.
	ListContainersRequest struct{}

	// EngineInfoRequest asks for the engine-wide diagnostic report (free text).
	EngineInfoRequest struct{}

	// LaunchRequest launches a detached container. Image and Name are
	// mandatory; PortMapping and Command are optional. Command tokens are
	// appended to the argv vector verbatim, in order.
	LaunchRequest struct {
		Image       ImageRef
		Name        ContainerName
		PortMapping PortMapping
		Command     []string
	}

	// InvalidLaunchRequestError is returned when a LaunchRequest has one or
	// more invalid fields. It aggregates the individual field errors.
	InvalidLaunchRequestError struct {
		FieldErrs []error
	}

	// StopRequest stops the named container. The facade issues a best-effort
	// removal afterwards; the removal never affects the stop result.
	StopRequest struct {
		Name ContainerName
	}

	// HostSystemInfoRequest reads OS name, CPU architecture, and OS family
	// from the local execution environment. It never reaches the engine CLI.
	HostSystemInfoRequest struct{}
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string { return string(k) }

// String returns the string representation of the ContainerName.
func (n ContainerName) String() string { return string(n) }

// Validate returns an error if the ContainerName is empty or whitespace-only.
func (n ContainerName) Validate() error {
	if strings.TrimSpace(string(n)) == "" {
		return &InvalidContainerNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidContainerNameError) Error() string {
	return fmt.Sprintf("invalid container name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidContainerName for errors.Is() compatibility.
func (e *InvalidContainerNameError) Unwrap() error { return ErrInvalidContainerName }

// String returns the string representation of the ImageRef.
func (i ImageRef) String() string { return string(i) }

// Validate returns an error if the ImageRef is empty or whitespace-only.
func (i ImageRef) Validate() error {
	if strings.TrimSpace(string(i)) == "" {
		return &InvalidImageRefError{Value: i}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidImageRefError) Error() string {
	return fmt.Sprintf("invalid image reference %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidImageRef for errors.Is() compatibility.
func (e *InvalidImageRefError) Unwrap() error { return ErrInvalidImageRef }

// String returns the string representation of the PortMapping.
func (p PortMapping) String() string { return string(p) }

// Validate returns an error if a non-empty PortMapping is not of the form
// "hostPort:containerPort[/protocol]" with ports in 1-65535.
// The zero value ("") is valid and means no port is published.
func (p PortMapping) Validate() error {
	if p == "" {
		return nil
	}
	parts := strings.SplitN(string(p), ":", 2)
	if len(parts) != 2 {
		return &InvalidPortMappingError{Value: p, Reason: "must contain ':' separator"}
	}
	containerPart, _, _ := strings.Cut(parts[1], "/")
	for _, portStr := range []string{parts[0], containerPart} {
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil || port == 0 {
			return &InvalidPortMappingError{Value: p, Reason: fmt.Sprintf("port %q must be 1-65535", portStr)}
		}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidPortMappingError) Error() string {
	return fmt.Sprintf("invalid port mapping %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidPortMapping for errors.Is() compatibility.
func (e *InvalidPortMappingError) Unwrap() error { return ErrInvalidPortMapping }

// Kind implements Request.
func (ListContainersRequest) Kind() OpKind   { return OpListContainers }
func (ListContainersRequest) sealedRequest() {}

// Kind implements Request.
func (EngineInfoRequest) Kind() OpKind   { return OpEngineInfo }
func (EngineInfoRequest) sealedRequest() {}

// Kind implements Request.
func (LaunchRequest) Kind() OpKind   { return OpLaunch }
func (LaunchRequest) sealedRequest() {}

// Kind implements Request.
func (StopRequest) Kind() OpKind   { return OpStop }
func (StopRequest) sealedRequest() {}

// Kind implements Request.
func (HostSystemInfoRequest) Kind() OpKind   { return OpHostSystemInfo }
func (HostSystemInfoRequest) sealedRequest() {}

// Validate returns an error if any typed field of the LaunchRequest is
// invalid. Image and Name must be non-empty; PortMapping may be the zero
// value. Command tokens are passed to the engine verbatim and carry no
// validation of their own.
func (r LaunchRequest) Validate() error {
	var errs []error
	if err := r.Image.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := r.Name.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := r.PortMapping.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidLaunchRequestError{FieldErrs: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidLaunchRequestError) Error() string {
	return fmt.Sprintf("invalid launch request: %d field error(s): %v",
		len(e.FieldErrs), errors.Join(e.FieldErrs...))
}

// Unwrap returns ErrInvalidLaunchRequest for errors.Is() compatibility.
func (e *InvalidLaunchRequestError) Unwrap() error { return ErrInvalidLaunchRequest }

// Validate returns an error if the stop target name is invalid.
func (r StopRequest) Validate() error {
	return r.Name.Validate()
}
