package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiztris/internal/core"
	"github.com/vovakirdan/quiztris/internal/storage"
)

func TestMenuListsGamesWithBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.Result{GameID: "stub", Score: 12345}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, testConfig())

	var found *MenuItem
	for i := range m.items {
		if m.items[i].GameID == "stub" {
			found = &m.items[i]
		}
	}
	if found == nil {
		t.Fatal("registered game missing from menu")
	}
	if found.Best != 12345 {
		t.Errorf("Best = %d, expected 12345", found.Best)
	}
	if !strings.Contains(m.View(), "12,345") {
		t.Error("menu should show the best score")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil {
		t.Fatal("enter should select the highlighted game")
	}
	if m.Selected().GameID != m.items[0].GameID {
		t.Errorf("selected %q, expected %q", m.Selected().GameID, m.items[0].GameID)
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}

	for range len(m.items) + 3 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runes("q"))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestScoreboardRows(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Result{
		{GameID: "stub", Player: "bob", Score: 900, Correct: 4, Wrong: 1},
		{GameID: "stub", Score: 1500},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatal(err)
		}
	}

	sb := NewScoreboardModel(store, 100, 30)
	for sb.games[sb.gameCursor].ID != "stub" {
		sb.switchGame(1)
	}

	rows := sb.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if rows[0][1] != anonymousName || rows[0][2] != "1,500" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][1] != "bob" || rows[1][4] != "4/5" {
		t.Errorf("second row = %v", rows[1])
	}
	if !strings.Contains(sb.View(), "HIGH SCORES") {
		t.Error("title missing")
	}
}

func TestScoreboardSwitchGameWraps(t *testing.T) {
	sb := NewScoreboardModel(nil, 80, 24)
	n := len(sb.games)

	sb.switchGame(-1)
	if sb.gameCursor != n-1 {
		t.Errorf("gameCursor = %d, expected %d", sb.gameCursor, n-1)
	}
	sb.switchGame(1)
	if sb.gameCursor != 0 {
		t.Errorf("gameCursor = %d, expected 0", sb.gameCursor)
	}
}
