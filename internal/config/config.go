package config

// Config is the companion's own configuration. It never controls where the
// server log lives; that path is platform-determined.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Update UpdateConfig `yaml:"update"`
	UI     UIConfig     `yaml:"ui"`
}

// ServerConfig controls how the sidecar server is launched.
type ServerConfig struct {
	// Command overrides the bundled dockhand-server binary. Empty means
	// look next to the companion executable, then on PATH.
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	// CORSOrigins is passed through to the child verbatim.
	CORSOrigins string `yaml:"cors_origins"`

	// Suggestions toggles the child's optional suggestions feature.
	Suggestions *bool `yaml:"suggestions"`

	// PreferredSSHPort is tried first before falling back to an ephemeral
	// port. Zero disables the preference.
	PreferredSSHPort int `yaml:"preferred_ssh_port"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type UpdateConfig struct {
	Repo           string `yaml:"repo"` // owner/name on GitHub
	CheckOnStartup *bool  `yaml:"check_on_startup"`
}

type UIConfig struct {
	Theme string `yaml:"theme"`
}

// SuggestionsEnabled resolves the pointer-bool with its default.
func (s ServerConfig) SuggestionsEnabled() bool {
	return s.Suggestions == nil || *s.Suggestions
}

// CheckEnabled resolves the pointer-bool with its default.
func (u UpdateConfig) CheckEnabled() bool {
	return u.CheckOnStartup == nil || *u.CheckOnStartup
}
