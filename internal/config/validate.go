package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func validate(cfg *Config) error {
	if !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", cfg.Log.Level)
	}

	if p := cfg.Server.PreferredSSHPort; p < 0 || p > 65535 {
		return fmt.Errorf("server.preferred_ssh_port %d outside [0, 65535]", p)
	}

	if repo := cfg.Update.Repo; repo != "" {
		parts := strings.Split(repo, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("update.repo %q must be owner/name", repo)
		}
	}

	switch cfg.UI.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("ui.theme %q must be one of auto, light, dark", cfg.UI.Theme)
	}

	return nil
}
