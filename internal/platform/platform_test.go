// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func TestFamily(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "windows"},
		{"linux", "unix"},
		{"darwin", "unix"},
		{"freebsd", "unix"},
	}
	for _, tt := range tests {
		if got := Family(tt.goos); got != tt.want {
			t.Errorf("Family(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestSystemReport(t *testing.T) {
	report := SystemReport()

	want := fmt.Sprintf(
		"System Information:\nOperating System: %s\nArchitecture: %s\nFamily: %s\n",
		runtime.GOOS, runtime.GOARCH, Family(runtime.GOOS))
	if report != want {
		t.Errorf("SystemReport() = %q, want %q", report, want)
	}
	if !strings.HasSuffix(report, "\n") {
		t.Error("report must end with a newline")
	}
}
