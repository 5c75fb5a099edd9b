// Package ui is the companion's shell surface: a status panel over the
// negotiated channel plus a live tail of the server log. It talks to the
// core through exactly two operations: querying supervisor state and, on
// quit, letting main invoke shutdown.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dockhand/dockhand/internal/config"
	"github.com/dockhand/dockhand/internal/supervisor"
	"github.com/dockhand/dockhand/internal/ui/clip"
	"github.com/dockhand/dockhand/internal/update"
)

const flashDuration = 5 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

type App struct {
	cfg   *config.Config
	state *supervisor.State
	sup   *supervisor.Supervisor

	keys       KeyMap
	viewport   viewport.Model
	width      int
	height     int
	ready      bool
	showSecret bool
	showHelp   bool
	flash      string
	flashUntil time.Time
	updateNote string
}

func NewApp(cfg *config.Config, state *supervisor.State, sup *supervisor.Supervisor) App {
	return App{
		cfg:   cfg,
		state: state,
		sup:   sup,
		keys:  DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	if a.cfg.Update.CheckEnabled() {
		return checkUpdate(Version, a.cfg.Update.Repo)
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		a.refreshLog()
		a.ready = true
		return a, nil

	case supervisor.LogLineMsg:
		a.refreshLog()
		return a, nil

	case supervisor.ChildExitedMsg:
		a.refreshLog()
		if msg.Signal != "" {
			return a.setFlash(fmt.Sprintf("server terminated by signal %s", msg.Signal))
		}
		return a.setFlash(fmt.Sprintf("server exited with code %d", msg.Code))

	case UpdateAvailableMsg:
		a.updateNote = fmt.Sprintf("update %s available", msg.Release.Version)
		return a, nil

	case ClearFlashMsg:
		if time.Now().After(a.flashUntil) {
			a.flash = ""
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		// Shutdown itself is main's job, after the program returns.
		return a, tea.Quit

	case key.Matches(msg, a.keys.ToggleMask):
		a.showSecret = !a.showSecret
		return a, nil

	case key.Matches(msg, a.keys.CopySecret):
		if err := clip.Write(a.state.Secret()); err != nil {
			return a.setFlash("copy failed: " + err.Error())
		}
		return a.setFlash("secret copied")

	case key.Matches(msg, a.keys.CopyPort):
		if err := clip.Write(fmt.Sprintf("%d", a.state.Port())); err != nil {
			return a.setFlash("copy failed: " + err.Error())
		}
		return a.setFlash("port copied")

	case key.Matches(msg, a.keys.CopyLog):
		if path := a.sup.LogPath(); path != "" {
			if err := clip.Write(path); err != nil {
				return a.setFlash("copy failed: " + err.Error())
			}
			return a.setFlash("log path copied")
		}
		return a.setFlash("no log file yet")

	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		return a, nil

	case key.Matches(msg, a.keys.Up):
		offset := a.viewport.YOffset - 1
		if offset < 0 {
			offset = 0
		}
		a.viewport.SetYOffset(offset)
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.viewport.SetYOffset(a.viewport.YOffset + 1)
		return a, nil
	}

	return a, nil
}

func (a *App) setFlash(text string) (tea.Model, tea.Cmd) {
	a.flash = text
	a.flashUntil = time.Now().Add(flashDuration)
	return *a, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func (a *App) resize() {
	logHeight := a.height - statusHeight() - 2 // status panel + footer line
	if logHeight < 3 {
		logHeight = 3
	}
	a.viewport = viewport.New(a.width-2, logHeight-2)
}

func (a *App) refreshLog() {
	if a.viewport.Width == 0 {
		return
	}
	atBottom := a.viewport.AtBottom()
	a.viewport.SetContent(strings.Join(a.sup.Buffer().Lines(), "\n"))
	if atBottom {
		a.viewport.GotoBottom()
	}
}

func statusHeight() int { return 6 }

func (a App) View() string {
	if !a.ready {
		return "loading..."
	}
	if a.showHelp {
		return a.helpView()
	}

	var b strings.Builder
	b.WriteString(a.statusView())
	b.WriteString("\n")
	b.WriteString(panelStyle.Width(a.width - 2).Render(a.viewport.View()))
	b.WriteString("\n")
	b.WriteString(a.footerView())
	return b.String()
}

func (a App) statusView() string {
	phase := a.sup.Phase()
	phaseColor := statusPending
	switch phase {
	case supervisor.PhaseRunning:
		phaseColor = statusRunning
	case supervisor.PhaseTerminated:
		phaseColor = statusError
	}

	secret := strings.Repeat("•", len(a.state.Secret()))
	if a.showSecret {
		secret = a.state.Secret()
	}

	title := titleStyle.Render("dockhand " + Version)
	if a.updateNote != "" {
		title += "  " + secondaryStyle.Render(a.updateNote)
	}

	rows := []string{
		title,
		fmt.Sprintf("%s %s", dimStyle.Render("server:"),
			lipgloss.NewStyle().Foreground(phaseColor).Render(phase.String())),
		fmt.Sprintf("%s %d   %s %d", dimStyle.Render("port:"), a.state.Port(),
			dimStyle.Render("ssh:"), a.state.SSHPort()),
		fmt.Sprintf("%s %s", dimStyle.Render("secret:"), secret),
	}
	return panelStyle.Width(a.width - 2).Render(strings.Join(rows, "\n"))
}

func (a App) footerView() string {
	if a.flash != "" && time.Now().Before(a.flashUntil) {
		return " " + secondaryStyle.Render(a.flash)
	}
	hints := []string{
		keyStyle.Render("s") + secondaryStyle.Render(":secret"),
		keyStyle.Render("c") + secondaryStyle.Render(":copy"),
		keyStyle.Render("?") + secondaryStyle.Render(":help"),
		keyStyle.Render("q") + secondaryStyle.Render(":quit"),
	}
	return " " + strings.Join(hints, "  ")
}

func (a App) helpView() string {
	bindings := []key.Binding{
		a.keys.Up, a.keys.Down, a.keys.ToggleMask, a.keys.CopySecret,
		a.keys.CopyPort, a.keys.CopyLog, a.keys.Help, a.keys.Quit,
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("dockhand keys") + "\n\n")
	for _, kb := range bindings {
		h := kb.Help()
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-3s", h.Key)),
			secondaryStyle.Render(h.Desc)))
	}
	b.WriteString("\n" + dimStyle.Render("press ? to close"))
	return b.String()
}

func checkUpdate(version, repo string) tea.Cmd {
	return func() tea.Msg {
		rel, err := update.Check(version, repo)
		if err != nil || rel == nil {
			return nil
		}
		return UpdateAvailableMsg{Release: rel}
	}
}
