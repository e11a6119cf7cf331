package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/report"
	"github.com/akyairhashvil/HABT/internal/util"
)

func (m DashboardModel) handleToggle(key string) (DashboardModel, tea.Cmd, bool) {
	if key != " " && key != "enter" {
		return m, nil, false
	}
	h, ok := m.focusedHabit()
	if !ok {
		return m, nil, true
	}
	if _, ok := m.store.ToggleState(h.ID, util.DateKey(m.focusedDate())); ok {
		m.refreshData()
	}
	return m, nil, true
}

func (m DashboardModel) handleReorder(key string) (DashboardModel, tea.Cmd, bool) {
	switch key {
	case "K":
		if m.store.Reorder(m.focusRow, m.focusRow-1) {
			m.focusRow--
			m.refreshData()
		}
		return m, nil, true
	case "J":
		if m.store.Reorder(m.focusRow, m.focusRow+1) {
			m.focusRow++
			m.refreshData()
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m DashboardModel) handleHabitCreate(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "a" {
		return m, nil, false
	}
	m.openModal(&HabitAddState{})
	m.inputs.nameInput.Reset()
	m.inputs.nameInput.Focus()
	return m, textinput.Blink, true
}

func (m DashboardModel) handleHabitRename(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "r" {
		return m, nil, false
	}
	h, ok := m.focusedHabit()
	if !ok {
		return m, nil, true
	}
	m.openModal(&HabitRenameState{HabitID: h.ID})
	m.inputs.nameInput.SetValue(h.Name)
	m.inputs.nameInput.CursorEnd()
	m.inputs.nameInput.Focus()
	return m, textinput.Blink, true
}

func (m DashboardModel) handleHabitDelete(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "d" {
		return m, nil, false
	}
	h, ok := m.focusedHabit()
	if !ok {
		return m, nil, true
	}
	pending := m.store.RequestDelete(h.ID)
	if pending == nil {
		return m, nil, true
	}
	m.openModal(&ConfirmState{
		Pending: pending,
		Success: fmt.Sprintf("Deleted %q", h.Name),
	})
	return m, nil, true
}

func (m DashboardModel) handleExport(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "e" {
		return m, nil, false
	}
	payload, err := m.store.Export()
	if err == nil {
		path := habit.DefaultExportPath(time.Now())
		if err = habit.WriteExportFile(path, payload); err == nil {
			m.logger.Info("export written", zap.String("path", path))
			return m, m.setToast("Export saved: "+path, false), true
		}
	}
	m.logger.Warn("export failed", zap.Error(err))
	return m, m.setToast(fmt.Sprintf("Export failed: %v", err), true), true
}

func (m DashboardModel) handleImport(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "i" {
		return m, nil, false
	}
	m.openModal(&ImportPathState{})
	m.inputs.pathInput.Reset()
	m.inputs.pathInput.Focus()
	return m, textinput.Blink, true
}

func (m DashboardModel) handleReport(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "p" {
		return m, nil, false
	}
	now := time.Now()
	path, err := report.Generate(m.habits, m.completions, m.window.VisibleDates(), m.window.RangeLabel(), now, util.ReportsDir(config.AppName))
	if err != nil {
		m.logger.Warn("report failed", zap.Error(err))
		return m, m.setToast(fmt.Sprintf("Report failed: %v", err), true), true
	}
	m.logger.Info("report written", zap.String("path", path))
	return m, m.setToast("Report generated: "+path, false), true
}

func (m DashboardModel) handleNewTabToggle(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "n" {
		return m, nil, false
	}
	enabled := !m.useAsNewTab
	m.store.SetUseAsNewTab(enabled)
	m.useAsNewTab = enabled
	if enabled {
		return m, m.setToast("New tab mode enabled", false), true
	}
	return m, m.setToast("New tab mode disabled", false), true
}

func (m DashboardModel) handleThemePicker(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "T" {
		return m, nil, false
	}
	cursor := 0
	for i, name := range m.themeNames {
		if Themes[name].Name == m.theme.Name {
			cursor = i
		}
	}
	m.openModal(&ThemeState{Cursor: cursor})
	return m, nil, true
}
