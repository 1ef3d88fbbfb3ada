// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines the ActionableError type (operation/resource/suggestions context
// around a cause) and a catalog of Markdown-formatted remediation guides, one
// per failure kind dockbridge can report, rendered with glamour for the
// `dockbridge explain` command.
package issue
