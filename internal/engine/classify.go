// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"fmt"
	"strings"
)

type (
	// ContainerSummary is one running container as reported by the engine's
	// ps table. Fields are copied from an already-split output line and never
	// mutated afterwards.
	ContainerSummary struct {
		ID     string
		Image  string
		Name   string
		Status string
	}

	// Result is the typed outcome of one operation. Exactly one of the
	// payload fields (matching Kind) or Err is populated — never both,
	// never neither.
	Result struct {
		// Kind identifies the operation the result belongs to.
		Kind OpKind
		// Containers is the ListContainers payload (possibly empty).
		Containers []ContainerSummary
		// Report is the EngineInfo / HostSystemInfo payload.
		Report string
		// Confirmation is the Launch / Stop payload; it always contains the
		// container name.
		Confirmation string
		// Err is a *DomainError (or a request validation error) when the
		// operation failed.
		Err error
	}
)

// Failed reports whether the result carries a failure.
func (r Result) Failed() bool { return r.Err != nil }

// Classify maps the raw subprocess outcome for a request onto a typed Result.
// It is a pure function: no retries, no side effects. The stderr substring
// rules depend on the engine CLI's message wording and are deliberately
// isolated here so they can be updated without touching callers; each rule
// has a dedicated test with a literal captured sample.
func Classify(req Request, out Outcome) Result {
	res := Result{Kind: req.Kind()}

	switch {
	case out.TimedOut:
		res.Err = newDomainError(FailureTimeout,
			fmt.Sprintf("%s exceeded its time budget and was terminated", res.Kind))
		return res
	case out.SpawnErr != nil:
		res.Err = newDomainError(FailureEngineNotInstalled, out.SpawnErr.Error())
		return res
	case out.ExitCode != 0:
		res.Err = classifyFailure(req, string(out.Stderr))
		// Stopping a name that is not running is already the desired state.
		if res.Err == nil {
			if stop, ok := req.(StopRequest); ok {
				res.Confirmation = stopConfirmation(stop.Name)
			}
		}
		return res
	}

	switch r := req.(type) {
	case ListContainersRequest:
		res.Containers = parseContainerTable(out.Stdout)
	case EngineInfoRequest, HostSystemInfoRequest:
		text := string(out.Stdout)
		if strings.TrimSpace(text) == "" {
			res.Err = newDomainError(FailureMalformedOutput,
				fmt.Sprintf("%s produced no output", res.Kind))
			return res
		}
		res.Report = text
	case LaunchRequest:
		res.Confirmation = fmt.Sprintf("Successfully launched container: %s", r.Name)
	case StopRequest:
		res.Confirmation = stopConfirmation(r.Name)
	}
	return res
}

// classifyFailure applies the stderr substring rules, most specific first:
// a real engine error line almost always mentions the word "daemon", so the
// daemon/connection rule has to come after the name-conflict and image rules
// or it would swallow them. A nil return means the failure was absorbed
// (stop on a nonexistent container is idempotent by decision).
func classifyFailure(req Request, stderr string) error {
	// Docker says `No such container`, Podman `... no such container`;
	// fold case so both engines get the same idempotent stop.
	if req.Kind() == OpStop && strings.Contains(strings.ToLower(stderr), "no such container") {
		return nil
	}
	switch {
	case strings.Contains(stderr, "already in use"):
		return newDomainError(FailureNameConflict, stderr)
	case strings.Contains(stderr, "pull"),
		strings.Contains(stderr, "not found"),
		strings.Contains(stderr, "Unable"):
		return newDomainError(FailureImageNotFound, stderr)
	case strings.Contains(stderr, "daemon"),
		strings.Contains(stderr, "Connection"):
		return newDomainError(FailureEngineUnreachable, stderr)
	default:
		return newDomainError(FailureUnknown, stderr)
	}
}

// parseContainerTable parses the engine's ps output: one header line, then
// one tab-separated line per container (ID, Image, Name, Status). A line with
// fewer than four fields is dropped without failing the rest; the result may
// be empty.
func parseContainerTable(stdout []byte) []ContainerSummary {
	lines := strings.Split(string(stdout), "\n")
	containers := make([]ContainerSummary, 0, max(len(lines)-1, 0))
	for i, line := range lines {
		if i == 0 {
			continue // header row
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 4 {
			continue
		}
		containers = append(containers, ContainerSummary{
			ID:     strings.TrimSpace(fields[0]),
			Image:  strings.TrimSpace(fields[1]),
			Name:   strings.TrimSpace(fields[2]),
			Status: strings.TrimSpace(fields[3]),
		})
	}
	return containers
}

func stopConfirmation(name ContainerName) string {
	return fmt.Sprintf("Container %s stopped and removed", name)
}
