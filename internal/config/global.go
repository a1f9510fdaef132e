// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// globalConfig caches the last successfully loaded configuration.
	globalConfig *Config
	// configPath records which file the cached configuration came from
	// ("" when defaults were used).
	configPath string
	// errLastLoad records the error from the most recent failed load.
	errLastLoad error

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
	// configFilePathOverride forces loading from a specific file (--config flag).
	configFilePathOverride string
)

// Load returns the cached configuration, loading it from disk on first use.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, resolvedPath, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		errLastLoad = err
		return nil, err
	}

	globalConfig = cfg
	configPath = resolvedPath
	errLastLoad = nil
	return cfg, nil
}

// Get returns the configuration, falling back to defaults when loading
// fails. The load error stays retrievable via LastLoadError so the CLI
// can surface it instead of silently running on defaults.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		errLastLoad = err
		return DefaultConfig()
	}
	return cfg
}

// LastLoadError returns the error from the most recent failed load, or nil.
func LastLoadError() error {
	return errLastLoad
}

// ConfigFilePath returns the path of the file the cached configuration was
// loaded from, or "" when defaults are in effect.
//
//nolint:revive // ConfigFilePath is more descriptive than FilePath for external callers
func ConfigFilePath() string {
	return configPath
}

// ResetCache clears the cached configuration so the next Load re-reads
// from disk. Overrides stay in place.
func ResetCache() {
	globalConfig = nil
	configPath = ""
	errLastLoad = nil
}

// Reset clears cached state and all test overrides. Call from test
// cleanup to restore defaults.
func Reset() {
	ResetCache()
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces configuration loading from a specific
// file, as set by the --config flag. Clears the cache so the next Load
// honors the new path.
func SetConfigFilePathOverride(path string) {
	ResetCache()
	configFilePathOverride = path
}
