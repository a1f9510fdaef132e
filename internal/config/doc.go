// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/corekit/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/corekit/config.toml on macOS, %APPDATA%\corekit\config.toml
// on Windows). The package provides type-safe configuration access for UI settings:
// color scheme, output format, and verbosity.
//
// Enum-valued fields are validated after decoding so a typo in the file surfaces as an
// actionable error instead of silently falling back to defaults.
package config
