package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dockhand/dockhand/internal/config"
	"github.com/dockhand/dockhand/internal/supervisor"
	"github.com/dockhand/dockhand/internal/update"
)

var releaseStub = update.Release{Version: "v9.9.9", URL: "https://example.com"}

func newTestApp() App {
	cfg := config.DefaultConfig()
	state := supervisor.NewState(3001, 3333, "S3CR3TS3CR3TS3CR3TS3CR3TS3CR3T12")
	sup := supervisor.New(&cfg, state, zap.NewNop())
	return NewApp(&cfg, state, sup)
}

func sized(t *testing.T, a App) App {
	t.Helper()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m.(App)
}

func TestViewShowsNegotiatedChannel(t *testing.T) {
	a := sized(t, newTestApp())

	view := a.View()
	if !strings.Contains(view, "3001") {
		t.Error("view does not show the negotiated port")
	}
	if !strings.Contains(view, "3333") {
		t.Error("view does not show the SSH port")
	}
	if strings.Contains(view, "S3CR3T") {
		t.Error("secret shown unmasked by default")
	}
	if !strings.Contains(view, "not started") {
		t.Error("view does not show the supervisor phase")
	}
}

func TestSecretMaskToggle(t *testing.T) {
	a := sized(t, newTestApp())

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	a = m.(App)
	if !strings.Contains(a.View(), "S3CR3TS3CR3TS3CR3TS3CR3TS3CR3T12") {
		t.Error("secret not revealed after toggle")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	a = m.(App)
	if strings.Contains(a.View(), "S3CR3T") {
		t.Error("secret still visible after second toggle")
	}
}

func TestQuitKeyQuits(t *testing.T) {
	a := sized(t, newTestApp())

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %v, want tea.QuitMsg", cmd())
	}
}

func TestLogLinesAppearInViewport(t *testing.T) {
	a := sized(t, newTestApp())

	a.sup.Buffer().Append("[stdout] server listening")
	m, _ := a.Update(supervisor.LogLineMsg{})
	a = m.(App)

	if !strings.Contains(a.View(), "[stdout] server listening") {
		t.Error("viewport does not show the appended log line")
	}
}

func TestChildExitFlash(t *testing.T) {
	a := sized(t, newTestApp())

	m, _ := a.Update(supervisor.ChildExitedMsg{Code: 137, Signal: "killed"})
	a = m.(App)
	if !strings.Contains(a.View(), "terminated by signal killed") {
		t.Error("child exit flash missing from view")
	}
}

func TestHelpOverlay(t *testing.T) {
	a := sized(t, newTestApp())

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	a = m.(App)
	view := a.View()
	if !strings.Contains(view, "copy secret") {
		t.Error("help overlay missing key descriptions")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	a = m.(App)
	if strings.Contains(a.View(), "press ? to close") {
		t.Error("help overlay still shown after second toggle")
	}
}

func TestUpdateAvailableNote(t *testing.T) {
	a := sized(t, newTestApp())

	m, _ := a.Update(UpdateAvailableMsg{Release: &releaseStub})
	a = m.(App)
	if !strings.Contains(a.View(), "update v9.9.9 available") {
		t.Error("update note missing from view")
	}
}
