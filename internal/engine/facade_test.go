// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// newTestService builds a Service over the mock engine with logging silenced.
func newTestService(t *testing.T, recorder *MockCommandRecorder, opts ...ServiceOption) *Service {
	t.Helper()
	base := []ServiceOption{
		WithLogger(log.NewWithOptions(io.Discard, log.Options{})),
	}
	return NewService(newMockEngine(t, recorder), append(base, opts...)...)
}

func TestService_ListContainers(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.Stdout = "CONTAINER ID\tIMAGE\tNAMES\tSTATUS\n" +
		"1f1aa72bc9f3\tnginx:alpine\tweb\tUp 2 minutes\n"
	svc := newTestService(t, recorder)

	containers, err := svc.ListContainers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(containers) != 1 || containers[0].Name != "web" {
		t.Errorf("unexpected containers: %v", containers)
	}

	recorder.AssertInvocationCount(t, 1)
	recorder.AssertFirstArg(t, "ps")
	recorder.AssertArgsContain(t, "--format")
}

func TestService_EngineInfo(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.Stdout = "Server:\n Containers: 3\n"
	svc := newTestService(t, recorder)

	report, err := svc.EngineInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != "Server:\n Containers: 3\n" {
		t.Errorf("unexpected report: %q", report)
	}
	recorder.AssertFirstArg(t, "info")
}

func TestService_LaunchContainer(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.Stdout = "1f1aa72bc9f3\n"
	svc := newTestService(t, recorder)

	confirmation, err := svc.LaunchContainer(context.Background(), LaunchRequest{
		Image:       "nginx:alpine",
		Name:        "web",
		PortMapping: "8080:80",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(confirmation, "web") {
		t.Errorf("confirmation must contain the container name, got %q", confirmation)
	}

	recorder.AssertFirstArg(t, "run")
	if !recorder.HasArg("-d") {
		t.Error("launch must run detached")
	}
	if !recorder.HasArgPair("--name", "web") {
		t.Errorf("expected --name web in args: %v", recorder.LastArgs())
	}
	if !recorder.HasArgPair("-p", "8080:80") {
		t.Errorf("expected -p 8080:80 in args: %v", recorder.LastArgs())
	}
}

func TestService_LaunchRejectsInvalidRequestBeforeSpawning(t *testing.T) {
	recorder := NewMockCommandRecorder()
	svc := newTestService(t, recorder)

	_, err := svc.LaunchContainer(context.Background(), LaunchRequest{
		Image: "",
		Name:  "  ",
	})

	if !errors.Is(err, ErrInvalidLaunchRequest) {
		t.Fatalf("expected ErrInvalidLaunchRequest, got %v", err)
	}
	if !errors.Is(err, ErrInvalidImageRef) || !errors.Is(err, ErrInvalidContainerName) {
		t.Errorf("aggregated error must expose field errors, got %v", err)
	}
	recorder.AssertInvocationCount(t, 0)
}

func TestService_StopThenRemove(t *testing.T) {
	recorder := NewMockCommandRecorder()
	svc := newTestService(t, recorder)

	confirmation, err := svc.StopContainer(context.Background(), "web")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmation != "Container web stopped and removed" {
		t.Errorf("unexpected confirmation: %q", confirmation)
	}

	// stop then best-effort rm
	recorder.AssertInvocationCount(t, 2)
	recorder.AssertFirstArg(t, "rm")
	recorder.AssertArgsContain(t, "web")
}

func TestService_StopFailureSkipsRemoval(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.ExitCode = 1
	recorder.Stderr = "Cannot connect to the Docker daemon at unix:///var/run/docker.sock. Is the docker daemon running?"
	svc := newTestService(t, recorder)

	_, err := svc.StopContainer(context.Background(), "web")

	if !errors.Is(err, ErrEngineUnreachable) {
		t.Fatalf("expected ErrEngineUnreachable, got %v", err)
	}
	recorder.AssertInvocationCount(t, 1)
}

func TestService_StopMissingContainerSucceedsAndStillRemoves(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.ExitCode = 1
	recorder.Stderr = "Error response from daemon: No such container: web"
	svc := newTestService(t, recorder)

	confirmation, err := svc.StopContainer(context.Background(), "web")
	if err != nil {
		t.Fatalf("stop of a nonexistent container must succeed, got %v", err)
	}
	if !strings.Contains(confirmation, "web") {
		t.Errorf("confirmation must contain the name, got %q", confirmation)
	}
	recorder.AssertInvocationCount(t, 2)
}

func TestService_RemovalFailureNeverDowngradesStop(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.FailOnSubcommand = "rm"
	svc := newTestService(t, recorder)

	confirmation, err := svc.StopContainer(context.Background(), "web")
	if err != nil {
		t.Fatalf("a failed removal must be absorbed, got %v", err)
	}
	if confirmation != "Container web stopped and removed" {
		t.Errorf("unexpected confirmation: %q", confirmation)
	}
	recorder.AssertInvocationCount(t, 2)
}

func TestService_HostSystemInfoNeedsNoEngine(t *testing.T) {
	// Bound to an engine whose binary is absent: the host info path must
	// still work because it never spawns a subprocess.
	svc := NewService(
		NewDockerEngine(WithBinaryPath(""), WithSpawnPrefix(nil)),
		WithLogger(log.NewWithOptions(io.Discard, log.Options{})),
	)

	report, err := svc.HostSystemInfo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"System Information:", "Operating System:", "Architecture:", "Family:"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestService_MissingBinaryClassifiesAsNotInstalled(t *testing.T) {
	svc := NewService(
		NewDockerEngine(WithBinaryPath(""), WithSpawnPrefix(nil)),
		WithLogger(log.NewWithOptions(io.Discard, log.Options{})),
	)

	_, err := svc.ListContainers(context.Background())

	if !errors.Is(err, ErrEngineNotInstalled) {
		t.Errorf("expected ErrEngineNotInstalled, got %v", err)
	}
}

func TestService_TimeoutClassifiesAsTimeout(t *testing.T) {
	recorder := NewMockCommandRecorder()
	recorder.SleepMs = 2000
	svc := newTestService(t, recorder, WithTimeout(100*time.Millisecond))

	_, err := svc.EngineInfo(context.Background())

	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}
