package config

// DefaultConfig returns the config used when no file is found. Every field a
// merge can override has a sensible value here.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			CORSOrigins:      "http://localhost,app://localhost",
			PreferredSSHPort: 3333,
		},
		Log: LogConfig{
			Level: "info",
		},
		Update: UpdateConfig{
			Repo: "dockhand/dockhand",
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}
