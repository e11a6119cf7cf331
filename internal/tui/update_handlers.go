package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/HABT/internal/util"
)

func (m DashboardModel) handleWindowSize(msg tea.WindowSizeMsg) (DashboardModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	return m, nil
}

// handleTick notices day rollover. A window that was pinned to the old
// today follows the clock forward; a window paged into the past stays
// where the user left it.
func (m DashboardModel) handleTick(msg TickMsg) (DashboardModel, tea.Cmd) {
	now := time.Now()
	if !util.SameDay(now, m.today) {
		if util.SameDay(m.window.End(), m.today) {
			m.window.ResetToToday()
		}
		m.today = util.Midnight(now)
	}
	return m, tickCmd()
}

func (m DashboardModel) handleNormalMode(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	key := msg.String()
	if next, handled := m.handleArrowKeys(key); handled {
		return next, nil
	}
	if next, handled := m.handlePaging(key); handled {
		return next, nil
	}
	if next, cmd, handled := m.handleToggle(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleReorder(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleHabitCreate(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleHabitRename(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleHabitDelete(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleExport(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleImport(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleReport(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleNewTabToggle(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleThemePicker(key); handled {
		return next, cmd
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
