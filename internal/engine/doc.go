// SPDX-License-Identifier: MPL-2.0

// Package engine drives an external container engine CLI (Docker/Podman) as
// subprocesses and exposes the container lifecycle operations dockbridge is
// built around: list running containers, fetch engine diagnostics, launch a
// detached container, and stop (plus best-effort remove) a container by name.
//
// The package is layered leaf-first: the runner executes one argv vector with
// a bounded time budget and captures stdout/stderr; the builders translate a
// typed Request into that argv vector; the classifier maps the raw outcome
// onto the closed DomainError taxonomy or a parsed success payload; Service
// composes the three per operation and provides Join for running independent
// operations concurrently.
//
// Engine selection uses NewEngine(EngineType) with automatic fallback if the
// preferred engine is unavailable, or AutoDetectEngine() for preference-less
// detection (Docker is tried first).
package engine
