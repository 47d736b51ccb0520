package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionKey(s SessionModel, msg tea.KeyMsg) (SessionModel, tea.Cmd) {
	next, cmd := s.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(store, testConfig(), "carol", nil)

	s, cmd := sessionKey(s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.game == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("game should start its tick loop")
	}
	if s.game.player != "carol" {
		t.Errorf("player = %q, expected carol", s.game.player)
	}

	s, cmd = sessionKey(s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.game != nil {
		t.Error("esc should leave the game")
	}
	if s.quitting || cmd != nil {
		t.Error("leaving a game should not end the session")
	}
	if !strings.Contains(s.View(), "Q U I Z T R I S") {
		t.Error("menu should be shown again")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	s := NewSessionModel(openStore(t), testConfig(), "dave", nil)

	s, _ = sessionKey(s, tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scoreboard not rendered")
	}

	s, _ = sessionKey(s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.scoreboard != nil || s.quitting {
		t.Error("esc should return to the menu")
	}
}

func TestSessionCtrlCQuits(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "erin", nil)
	s, _ = sessionKey(s, tea.KeyMsg{Type: tea.KeyEnter})

	s, cmd := sessionKey(s, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !s.quitting || cmd == nil {
		t.Error("ctrl+c should end the session from inside a game")
	}
	if s.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
