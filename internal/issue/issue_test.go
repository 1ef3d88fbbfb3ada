// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"dockbridge/internal/engine"
)

func TestValues_SortedAndComplete(t *testing.T) {
	entries := Values()

	if len(entries) != len(issues) {
		t.Fatalf("expected %d entries, got %d", len(issues), len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Id() >= entries[i].Id() {
			t.Errorf("entries not sorted by id: %d before %d", entries[i-1].Id(), entries[i].Id())
		}
	}
}

func TestValues_NamesAreUniqueAndWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, entry := range Values() {
		name := entry.Name()
		if name == "" {
			t.Errorf("issue %d has no name", entry.Id())
		}
		if seen[name] {
			t.Errorf("duplicate issue name %q", name)
		}
		seen[name] = true
		if strings.Contains(name, " ") || name != strings.ToLower(name) {
			t.Errorf("issue name %q must be lowercase and space-free", name)
		}
	}
}

func TestGet_RoundTrip(t *testing.T) {
	for _, entry := range Values() {
		if Get(entry.Id()) != entry {
			t.Errorf("Get(%d) does not return the catalog entry", entry.Id())
		}
	}
	if Get(Id(0)) != nil {
		t.Error("Get of an unknown id must return nil")
	}
}

func TestGetByName(t *testing.T) {
	if entry := GetByName("timeout"); entry == nil || entry.Id() != TimeoutId {
		t.Errorf("GetByName(timeout) = %v", entry)
	}
	if GetByName("no-such-guide") != nil {
		t.Error("GetByName of an unknown name must return nil")
	}
}

func TestEveryIssueHasMarkdownBody(t *testing.T) {
	for _, entry := range Values() {
		body := string(entry.MarkdownMsg())
		if !strings.Contains(body, "# ") {
			t.Errorf("issue %q has no Markdown heading", entry.Name())
		}
		if len(strings.TrimSpace(body)) < 40 {
			t.Errorf("issue %q body is suspiciously short", entry.Name())
		}
	}
}

func TestIssue_RenderUsesRenderer(t *testing.T) {
	old := render
	t.Cleanup(func() { render = old })

	var gotMarkdown string
	render = func(in string, _ string) (string, error) {
		gotMarkdown = in
		return "rendered", nil
	}

	out, err := Get(TimeoutId).Render("dark")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "rendered" {
		t.Errorf("unexpected render output %q", out)
	}
	if gotMarkdown != string(Get(TimeoutId).MarkdownMsg()) {
		t.Error("renderer did not receive the issue body")
	}
}

func TestForError_MapsEngineSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want Id
	}{
		{engine.ErrEngineNotInstalled, EngineNotInstalledId},
		{engine.ErrNoEngineAvailable, EngineNotInstalledId},
		{engine.ErrEngineUnreachable, EngineUnreachableId},
		{engine.ErrNameConflict, NameConflictId},
		{engine.ErrImageNotFound, ImageNotFoundId},
		{engine.ErrTimeout, TimeoutId},
		{engine.ErrMalformedOutput, MalformedOutputId},
		{engine.ErrInvalidContainerName, InvalidRequestId},
		{engine.ErrInvalidImageRef, InvalidRequestId},
		{engine.ErrInvalidPortMapping, InvalidRequestId},
		{engine.ErrInvalidLaunchRequest, InvalidRequestId},
		{errors.New("anything else"), UnknownFailureId},
	}
	for _, tt := range tests {
		if got := ForError(tt.err); got != tt.want {
			t.Errorf("ForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestForError_SeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while stopping: %w", engine.ErrNameConflict)
	if got := ForError(wrapped); got != NameConflictId {
		t.Errorf("ForError(wrapped) = %d, want %d", got, NameConflictId)
	}

	actionable := NewErrorContext().
		WithOperation("launch container").
		Wrap(engine.ErrTimeout).
		BuildError()
	if got := ForError(actionable); got != TimeoutId {
		t.Errorf("ForError(actionable) = %d, want %d", got, TimeoutId)
	}
}

func TestEveryEngineFailureKindHasAGuide(t *testing.T) {
	sentinels := []error{
		engine.ErrEngineNotInstalled,
		engine.ErrEngineUnreachable,
		engine.ErrNameConflict,
		engine.ErrImageNotFound,
		engine.ErrTimeout,
		engine.ErrMalformedOutput,
		engine.ErrUnknownFailure,
	}
	for _, sentinel := range sentinels {
		id := ForError(sentinel)
		if Get(id) == nil {
			t.Errorf("no catalog entry for %v (id %d)", sentinel, id)
		}
	}
}
