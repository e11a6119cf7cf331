package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

type toastExpiredMsg struct {
	seq int
}

type persistFailedMsg struct {
	err error
}

// The dashboard only needs the clock to notice day rollover, so a
// minute tick is plenty.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// waitForPersistErr surfaces background save failures as toasts. The
// command re-arms itself from Update after each delivery and ends when
// the store closes the channel.
func (m DashboardModel) waitForPersistErr() tea.Cmd {
	errs := m.store.Errors()
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return persistFailedMsg{err: err}
	}
}
