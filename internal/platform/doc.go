// SPDX-License-Identifier: MPL-2.0

// Package platform provides host-environment facts: OS name constants, the
// host system report served by the facade, and application-sandbox detection
// (Flatpak/Snap) used to reach the container engine binary on the host when
// dockbridge itself is packaged in a sandbox.
package platform
