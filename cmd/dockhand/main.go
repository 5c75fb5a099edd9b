package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dockhand/dockhand/internal/buildmode"
	"github.com/dockhand/dockhand/internal/config"
	"github.com/dockhand/dockhand/internal/credential"
	"github.com/dockhand/dockhand/internal/diag"
	"github.com/dockhand/dockhand/internal/logchannel"
	"github.com/dockhand/dockhand/internal/supervisor"
	"github.com/dockhand/dockhand/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := diag.New(cfg.Log.Level, diagPaths()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Negotiate the private channel before anything else starts. No
	// loopback port means an unusable host network stack: give up.
	var port, sshPort uint16
	if buildmode.Dev {
		port, sshPort = buildmode.DevServerPort, buildmode.DevSSHPort
	} else {
		port, err = credential.EphemeralPort()
		if err != nil {
			logger.Fatal("cannot allocate server port", zap.Error(err))
		}
		sshPort, err = credential.PreferredPort(uint16(cfg.Server.PreferredSSHPort))
		if err != nil {
			logger.Fatal("cannot allocate SSH port", zap.Error(err))
		}
	}

	state := supervisor.NewState(port, sshPort, credential.GenerateSecret())
	sup := supervisor.New(cfg, state, logger)

	// on_startup: spawn the sidecar. A failure is reported, not fatal;
	// the shell stays usable without a backing server.
	if buildmode.Dev {
		logger.Info("dev build: start the server separately",
			zap.Uint16("port", port), zap.Uint16("ssh_port", sshPort))
	} else if err := sup.Start(); err != nil {
		logger.Error("server failed to start, continuing without it", zap.Error(err))
	}

	p := tea.NewProgram(ui.NewApp(cfg, state, sup), tea.WithAltScreen())
	sup.SetProgram(p)
	if _, err := p.Run(); err != nil {
		logger.Error("shell error", zap.Error(err))
	}

	// on_quit: kill the child before the companion exits.
	sup.Shutdown()
	_ = logger.Sync()
}

// diagPaths routes the companion's own diagnostics to a file beside the
// server log while the TUI owns the terminal, with stderr as the fallback.
func diagPaths() []string {
	serverLog, err := logchannel.ResolvePath()
	if err != nil {
		return []string{"stderr"}
	}
	return []string{filepath.Join(filepath.Dir(serverLog), "dockhand.log")}
}
