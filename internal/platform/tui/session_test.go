package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/safari-maze/internal/core"
)

func sendSession(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(SessionConfig{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Player:  "guest",
	})

	m = sendSession(m, keyEnter, keyEnter)
	if m.view != viewGame || m.game == nil {
		t.Fatal("session did not start a game")
	}
	if m.lastOpts.Difficulty.Key != "easy" || m.lastOpts.Animal.Key != "chipmunk" {
		t.Errorf("started %s/%s", m.lastOpts.Difficulty.Key, m.lastOpts.Animal.Key)
	}

	m = sendSession(m, runeKey('p'), TickMsg(time.Now()), runeKey('b'))
	if m.view != viewSetup {
		t.Fatal("back from a paused game did not return to setup")
	}
	if m.setup.diffCursor != 0 || m.quitting {
		t.Error("unexpected setup state after returning")
	}

	// A tick left over from the finished game is ignored.
	m = sendSession(m, TickMsg(time.Now()))
	if m.view != viewSetup {
		t.Error("stale tick changed the view")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(SessionConfig{Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30}})

	m = sendSession(m, keyTab)
	if m.view != viewScores {
		t.Fatal("tab did not open the scoreboard")
	}

	m = sendSession(m, keyEsc)
	if m.view != viewSetup || m.quitting {
		t.Error("esc on the scoreboard should return to setup")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(SessionConfig{Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24}})
	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q in setup did not quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
