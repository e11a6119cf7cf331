package tui

import "github.com/akyairhashvil/HABT/internal/config"

func (m DashboardModel) handleArrowKeys(key string) (DashboardModel, bool) {
	switch key {
	case "up", "k":
		if m.focusRow > 0 {
			m.focusRow--
		}
		return m, true
	case "down", "j":
		if m.focusRow < len(m.habits)-1 {
			m.focusRow++
		}
		return m, true
	case "left", "h":
		if m.focusCol > 0 {
			m.focusCol--
		} else {
			// Walking off the left edge pages to the older window.
			m.window.PageBack()
			m.focusCol = config.WindowDays - 1
		}
		return m, true
	case "right", "l":
		if m.focusCol < config.WindowDays-1 {
			m.focusCol++
		} else if !m.window.OnToday() {
			m.window.PageForward()
			m.focusCol = 0
		}
		return m, true
	}
	return m, false
}

func (m DashboardModel) handlePaging(key string) (DashboardModel, bool) {
	switch key {
	case "[":
		m.window.PageBack()
		return m, true
	case "]":
		m.window.PageForward()
		return m, true
	case "t":
		m.window.ResetToToday()
		m.focusCol = config.WindowDays - 1
		return m, true
	}
	return m, false
}
