package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/HABT/internal/habit"
)

// handleModalState routes key input while a modal is open. Escape always
// backs out; a pending confirmation is cancelled so the store releases it.
func (m DashboardModel) handleModalState(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return m.handleModalCancel()
	}

	switch state := m.modal.(type) {
	case *HabitAddState:
		return m.handleHabitAddModal(msg)
	case *HabitRenameState:
		return m.handleHabitRenameModal(msg, state)
	case *ConfirmState:
		return m.handleConfirmModal(msg, state)
	case *ImportPathState:
		return m.handleImportPathModal(msg)
	case *ImportPassState:
		return m.handleImportPassModal(msg, state)
	case *ThemeState:
		return m.handleThemeModal(msg, state)
	}
	return m, nil
}

func (m DashboardModel) handleModalCancel() (DashboardModel, tea.Cmd) {
	if state, ok := m.modal.(*ConfirmState); ok {
		state.Pending.Cancel()
	}
	m.closeModal()
	return m, nil
}

func (m DashboardModel) handleHabitAddModal(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.inputs.nameInput.Value())
		if _, ok := m.store.Add(name); !ok {
			return m, m.setToast("Habit name cannot be empty", true)
		}
		m.closeModal()
		m.refreshData()
		m.focusRow = len(m.habits) - 1
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs.nameInput, cmd = m.inputs.nameInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleHabitRenameModal(msg tea.KeyMsg, state *HabitRenameState) (DashboardModel, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.inputs.nameInput.Value())
		if !m.store.Rename(state.HabitID, name) {
			return m, m.setToast("Habit name cannot be empty", true)
		}
		m.closeModal()
		m.refreshData()
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs.nameInput, cmd = m.inputs.nameInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleConfirmModal(msg tea.KeyMsg, state *ConfirmState) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		state.Pending.Confirm()
		m.closeModal()
		m.refreshData()
		return m, m.setToast(state.Success, false)
	case "n", "N":
		return m.handleModalCancel()
	}
	return m, nil
}

func (m DashboardModel) handleImportPathModal(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		path := strings.TrimSpace(m.inputs.pathInput.Value())
		if path == "" {
			return m, nil
		}
		data, err := habit.ReadExportFile(path)
		if err != nil {
			m.closeModal()
			return m, m.setToast(fmt.Sprintf("Import failed: %v", err), true)
		}
		return m.beginImport(path, data, "")
	}
	var cmd tea.Cmd
	m.inputs.pathInput, cmd = m.inputs.pathInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleImportPassModal(msg tea.KeyMsg, state *ImportPassState) (DashboardModel, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		pass := m.inputs.passInput.Value()
		if pass == "" {
			return m, nil
		}
		return m.beginImport(state.Path, state.Data, pass)
	}
	var cmd tea.Cmd
	m.inputs.passInput, cmd = m.inputs.passInput.Update(msg)
	return m, cmd
}

// beginImport decodes an export file and, on success, parks the parsed
// envelope behind a confirmation modal. Encrypted files detour through the
// passphrase prompt; a wrong passphrase keeps the prompt open with an
// inline message rather than dropping the whole flow.
func (m DashboardModel) beginImport(path string, data []byte, passphrase string) (DashboardModel, tea.Cmd) {
	env, err := habit.DecodeImport(data, passphrase)
	switch {
	case errors.Is(err, habit.ErrPassphraseNeeded):
		m.openModal(&ImportPassState{Path: path, Data: data})
		m.inputs.passInput.Reset()
		m.inputs.passInput.Focus()
		return m, textinput.Blink
	case errors.Is(err, habit.ErrDecryptFailed):
		if state, ok := m.modal.(*ImportPassState); ok {
			state.Message = "Wrong passphrase, try again"
			m.inputs.passInput.Reset()
			return m, nil
		}
		m.closeModal()
		return m, m.setToast("Import failed: could not decrypt file", true)
	case err != nil:
		m.closeModal()
		m.logger.Warn("import rejected", zap.String("path", path), zap.Error(err))
		return m, m.setToast(fmt.Sprintf("Import failed: %v", err), true)
	}

	pending := m.store.RequestImport(env)
	m.openModal(&ConfirmState{
		Pending: pending,
		Success: "Import complete",
	})
	return m, nil
}

func (m DashboardModel) handleThemeModal(msg tea.KeyMsg, state *ThemeState) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if state.Cursor > 0 {
			state.Cursor--
		}
	case "down", "j":
		if state.Cursor < len(m.themeNames)-1 {
			state.Cursor++
		}
	case "enter":
		SetTheme(m.themeNames[state.Cursor])
		m.theme = CurrentTheme
		m.closeModal()
		return m, m.setToast("Theme: "+m.theme.Name, false)
	}
	return m, nil
}
