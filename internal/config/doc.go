// SPDX-License-Identifier: MPL-2.0

// Package config handles dockbridge configuration loading and validation.
//
// Configuration lives in a TOML file under the platform config directory
// (e.g. ~/.config/dockbridge/config.toml on Linux). Loading merges the file
// over built-in defaults via Viper; a missing file is not an error.
package config
