package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/dockhand/dockhand/internal/supervisor"
)

const waitDuration = 3 * time.Second

func TestAppRendersStatusPanel(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestApp(), teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("dockhand")) && bytes.Contains(bts, []byte("3001"))
	}, teatest.WithDuration(waitDuration))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
}

func TestAppShowsLiveLogLines(t *testing.T) {
	a := newTestApp()
	tm := teatest.NewTestModel(t, a, teatest.WithInitialTermSize(80, 24))

	a.sup.Buffer().Append("[stdout] ready to serve")
	tm.Send(supervisor.LogLineMsg{})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("ready to serve"))
	}, teatest.WithDuration(waitDuration))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
}
