// Package tui runs games in a terminal with Bubble Tea: the fixed-rate tick
// loop, key decoding, the game picker, the leaderboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiztris/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. ID names the model
// whose tick loop sent it, so a stale loop from a finished game cannot drive
// the next one.
type TickMsg struct {
	Time time.Time
	ID   uint64
}

var lastTickID atomic.Uint64

func nextTickID() uint64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// 1/tickRate seconds. Non-positive rates use the default.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
