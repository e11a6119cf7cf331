// Package tui implements the interactive habit dashboard.
package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/util"
)

// --- Model ---

// DashboardModel renders the habit grid for a trailing window of days
// and routes key input to the store. All mutations go through the store;
// habits and completions are display copies refreshed after each change.
type DashboardModel struct {
	store  *habit.Store
	logger *zap.Logger
	window *habit.Window

	habits      []models.Habit
	completions models.CompletionMap
	useAsNewTab bool

	focusRow int
	focusCol int

	modal      ModalState
	inputs     *InputState
	theme      Theme
	themeNames []string

	toast      string
	toastIsErr bool
	toastSeq   int

	today         time.Time
	width, height int
}

func NewDashboardModel(store *habit.Store, logger *zap.Logger, themeName string) DashboardModel {
	SetTheme(themeName)
	var themeNames []string
	for name := range Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	m := DashboardModel{
		store:      store,
		logger:     logger,
		window:     habit.NewWindow(nil),
		inputs:     newInputState(),
		theme:      CurrentTheme,
		themeNames: themeNames,
		focusCol:   config.WindowDays - 1,
		today:      util.Midnight(time.Now()),
	}
	m.refreshData()
	return m
}

func (m *DashboardModel) refreshData() {
	m.habits = m.store.Habits()
	m.completions = m.store.Completions()
	m.useAsNewTab = m.store.UseAsNewTab()
	m.clampFocus()
}

func (m *DashboardModel) clampFocus() {
	if m.focusRow > len(m.habits)-1 {
		m.focusRow = len(m.habits) - 1
	}
	if m.focusRow < 0 {
		m.focusRow = 0
	}
	m.focusCol = util.Clamp(m.focusCol, 0, config.WindowDays-1)
}

func (m DashboardModel) focusedHabit() (models.Habit, bool) {
	if len(m.habits) == 0 || m.focusRow >= len(m.habits) {
		return models.Habit{}, false
	}
	return m.habits[m.focusRow], true
}

func (m DashboardModel) focusedDate() time.Time {
	dates := m.window.VisibleDates()
	return dates[util.Clamp(m.focusCol, 0, len(dates)-1)]
}

// setToast replaces the transient footer message and schedules its
// expiry. The sequence number keeps a stale expiry from clearing a
// newer toast.
func (m *DashboardModel) setToast(text string, isErr bool) tea.Cmd {
	m.toast = text
	m.toastIsErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(config.ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.waitForPersistErr())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		next, cmd := m.handleWindowSize(msg)
		return next, cmd
	case TickMsg:
		next, cmd := m.handleTick(msg)
		return next, cmd
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	case persistFailedMsg:
		if msg.err == nil {
			return m, nil
		}
		cmd := m.setToast("Saving failed: "+msg.err.Error(), true)
		return m, tea.Batch(cmd, m.waitForPersistErr())
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.toast != "" {
			m.toast = ""
		}
		if m.modal != nil {
			next, cmd := m.handleModalState(msg)
			return next, cmd
		}
		next, cmd := m.handleNormalMode(msg)
		return next, cmd
	}
	return m, nil
}
