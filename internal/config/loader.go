package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory for file discovery. This is
// the testable entry point; Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first
// config file that exists. Empty string means defaults-only mode.
func discoverConfigPath(dir string) (string, error) {
	local := filepath.Join(dir, "dockhand.yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "dockhand", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge applies override onto base. Scalar fields override when non-zero,
// slices replace entirely when non-nil, pointer-bools override when non-nil.
func merge(base *Config, override *Config) {
	if override.Server.Command != "" {
		base.Server.Command = override.Server.Command
	}
	if override.Server.Args != nil {
		base.Server.Args = override.Server.Args
	}
	if override.Server.CORSOrigins != "" {
		base.Server.CORSOrigins = override.Server.CORSOrigins
	}
	if override.Server.Suggestions != nil {
		base.Server.Suggestions = override.Server.Suggestions
	}
	if override.Server.PreferredSSHPort != 0 {
		base.Server.PreferredSSHPort = override.Server.PreferredSSHPort
	}

	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}

	if override.Update.Repo != "" {
		base.Update.Repo = override.Update.Repo
	}
	if override.Update.CheckOnStartup != nil {
		base.Update.CheckOnStartup = override.Update.CheckOnStartup
	}

	if override.UI.Theme != "" {
		base.UI.Theme = override.UI.Theme
	}
}

// applyEnvOverrides applies DOCKHAND_* environment variables on top.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DOCKHAND_SERVER_COMMAND"); v != "" {
		cfg.Server.Command = v
	}
	if v := os.Getenv("DOCKHAND_CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = v
	}
	if v := os.Getenv("DOCKHAND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DOCKHAND_PREFERRED_SSH_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.PreferredSSHPort = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: DOCKHAND_PREFERRED_SSH_PORT=%q is not a valid integer, ignoring\n", v)
		}
	}
}
