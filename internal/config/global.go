// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests. Pointing tests at a temp
// directory beats faking HOME: os.UserHomeDir ignores the HOME env var on
// some platforms, so an env-based override would silently not take effect.
var configDirOverride string

// Reset clears the config directory override. Register it as test cleanup
// so one test's override never leaks into the next.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride makes ConfigDir return dir instead of the platform
// default. Test-only; pair every call with a deferred Reset.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
