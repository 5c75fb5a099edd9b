// Package logchannel persists the sidecar server's output to a single
// append-only log file with size-bounded, point-in-time compaction.
package logchannel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName  = "dockhand"
	logFileName = "server.log"
)

// ResolvePath returns the platform-determined server log path, creating the
// directory tree if needed. Precedence is the platform state directory, then
// the data directory (XDG semantics on Linux, the OS equivalents elsewhere).
func ResolvePath() (string, error) {
	base := xdg.StateHome
	if base == "" {
		base = xdg.DataHome
	}
	if base == "" {
		return "", fmt.Errorf("no platform state or data directory available")
	}

	dir := filepath.Join(base, appDirName, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log directory %s: %w", dir, err)
	}
	return filepath.Join(dir, logFileName), nil
}
