// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"slices"
	"testing"
)

func TestBuildArgs_ListContainers(t *testing.T) {
	args := BuildArgs(ListContainersRequest{})
	want := []string{"ps", "--format", "table {{.ID}}\t{{.Image}}\t{{.Names}}\t{{.Status}}"}
	if !slices.Equal(args, want) {
		t.Errorf("expected %v, got %v", want, args)
	}
}

func TestBuildArgs_EngineInfo(t *testing.T) {
	args := BuildArgs(EngineInfoRequest{})
	if !slices.Equal(args, []string{"info"}) {
		t.Errorf("expected [info], got %v", args)
	}
}

func TestBuildArgs_Launch(t *testing.T) {
	tests := []struct {
		name string
		req  LaunchRequest
		want []string
	}{
		{
			name: "minimal",
			req:  LaunchRequest{Image: "nginx:alpine", Name: "web"},
			want: []string{"run", "-d", "--name", "web", "nginx:alpine"},
		},
		{
			name: "with port mapping",
			req:  LaunchRequest{Image: "nginx:alpine", Name: "web", PortMapping: "8080:80"},
			want: []string{"run", "-d", "--name", "web", "-p", "8080:80", "nginx:alpine"},
		},
		{
			name: "with command tokens in order",
			req: LaunchRequest{
				Image:   "alpine:latest",
				Name:    "worker",
				Command: []string{"sleep", "3600"},
			},
			want: []string{"run", "-d", "--name", "worker", "alpine:latest", "sleep", "3600"},
		},
		{
			name: "port mapping precedes image",
			req: LaunchRequest{
				Image:       "ghcr.io/org/app@sha256:abc",
				Name:        "app",
				PortMapping: "9000:9000/udp",
				Command:     []string{"--flag"},
			},
			want: []string{"run", "-d", "--name", "app", "-p", "9000:9000/udp", "ghcr.io/org/app@sha256:abc", "--flag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := BuildArgs(tt.req)
			if !slices.Equal(args, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, args)
			}
		})
	}
}

func TestBuildArgs_Stop(t *testing.T) {
	args := BuildArgs(StopRequest{Name: "web"})
	if !slices.Equal(args, []string{"stop", "web"}) {
		t.Errorf("expected [stop web], got %v", args)
	}
}

func TestBuildArgs_HostSystemInfoIsLocal(t *testing.T) {
	if args := BuildArgs(HostSystemInfoRequest{}); args != nil {
		t.Errorf("expected nil args for host system info, got %v", args)
	}
}

func TestRemoveArgs(t *testing.T) {
	if args := removeArgs("web"); !slices.Equal(args, []string{"rm", "web"}) {
		t.Errorf("expected [rm web], got %v", args)
	}
}

func TestVersionArgs(t *testing.T) {
	args := versionArgs()
	if !slices.Equal(args, []string{"version", "--format", "{{.Server.Version}}"}) {
		t.Errorf("unexpected version probe args: %v", args)
	}
}
