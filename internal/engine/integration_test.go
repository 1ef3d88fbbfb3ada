// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// checkTestcontainersAvailable safely checks if testcontainers can be used.
// Returns true if containers are available, false otherwise.
func checkTestcontainersAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

// TestService_Integration drives a real engine end to end: launch, list,
// stop, with the best-effort removal observable through a second listing.
// Requires Docker or Podman; skipped otherwise.
func TestService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// Check via our own engine detection first; it is more robust than
	// testcontainers-go's detection, which can panic on odd hosts.
	eng, err := AutoDetectEngine()
	if err != nil {
		t.Skipf("skipping integration test: no container engine available: %v", err)
	}
	if !checkTestcontainersAvailable() {
		t.Skip("skipping integration test: testcontainers provider not available")
	}

	svc := NewService(eng, WithTimeout(2*time.Minute))
	ctx := context.Background()
	name := ContainerName(fmt.Sprintf("dockbridge-it-%d", time.Now().UnixNano()))

	confirmation, err := svc.LaunchContainer(ctx, LaunchRequest{
		Image:   "alpine:latest",
		Name:    name,
		Command: []string{"sleep", "60"},
	})
	if err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if !strings.Contains(confirmation, string(name)) {
		t.Errorf("launch confirmation missing name: %q", confirmation)
	}
	t.Cleanup(func() {
		// Belt and braces: remove the container even if the stop step failed.
		_, _ = svc.StopContainer(ctx, name)
	})

	containers, err := svc.ListContainers(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	found := false
	for _, c := range containers {
		if c.Name == string(name) {
			found = true
			if c.Image != "alpine:latest" {
				t.Errorf("unexpected image for %s: %q", name, c.Image)
			}
		}
	}
	if !found {
		t.Fatalf("launched container %s not in listing: %v", name, containers)
	}

	report, err := svc.EngineInfo(ctx)
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if strings.TrimSpace(report) == "" {
		t.Error("info report is empty")
	}

	confirmation, err = svc.StopContainer(ctx, name)
	if err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if !strings.Contains(confirmation, string(name)) {
		t.Errorf("stop confirmation missing name: %q", confirmation)
	}

	// Stopping the same name again must be idempotent.
	if _, err := svc.StopContainer(ctx, name); err != nil {
		t.Errorf("second stop must succeed, got %v", err)
	}

	containers, err = svc.ListContainers(ctx)
	if err != nil {
		t.Fatalf("list after stop failed: %v", err)
	}
	for _, c := range containers {
		if c.Name == string(name) {
			t.Errorf("container %s still listed after stop", name)
		}
	}
}
