package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/util"
)

func TestToggleCyclesFocusedCell(t *testing.T) {
	m := setupTestDashboard(t)
	h := addHabit(t, &m, "Read")
	key := util.DateKey(time.Now())

	for _, want := range []models.State{models.StateDone, models.StateSkipped, models.StateUntracked} {
		next, _, handled := m.handleToggle(" ")
		if !handled {
			t.Fatalf("expected space to be handled")
		}
		m = next
		if got := m.store.StateOf(h.ID, key); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestReorderMovesFocusWithHabit(t *testing.T) {
	m := setupTestDashboard(t)
	first := addHabit(t, &m, "Read")
	addHabit(t, &m, "Run")

	next, _, handled := m.handleReorder("J")
	if !handled {
		t.Fatalf("expected 'J' to be handled")
	}
	if next.focusRow != 1 {
		t.Fatalf("expected focus to follow habit, got row %d", next.focusRow)
	}
	if next.habits[1].ID != first.ID {
		t.Fatalf("expected %q moved down", first.Name)
	}

	next, _, _ = next.handleReorder("K")
	if next.focusRow != 0 || next.habits[0].ID != first.ID {
		t.Fatalf("expected habit moved back up")
	}
}

func TestReorderAtEdgeIsNoop(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")

	next, _, _ := m.handleReorder("K")
	if next.focusRow != 0 {
		t.Fatalf("expected no move at top edge")
	}
}

func TestAddHabitViaModal(t *testing.T) {
	m := setupTestDashboard(t)

	model, _ := m.Update(keyRunes('a'))
	m = model.(DashboardModel)
	m.inputs.nameInput.SetValue("Meditate")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(DashboardModel)

	if m.modal != nil {
		t.Fatalf("expected modal closed")
	}
	if len(m.habits) != 1 || m.habits[0].Name != "Meditate" {
		t.Fatalf("expected habit added, got %+v", m.habits)
	}
	if m.focusRow != 0 {
		t.Fatalf("expected focus on new habit, got row %d", m.focusRow)
	}
}

func TestAddHabitRejectsEmptyName(t *testing.T) {
	m := setupTestDashboard(t)

	model, _ := m.Update(keyRunes('a'))
	m = model.(DashboardModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(DashboardModel)

	if m.activeModal() != ModalHabitAdd {
		t.Fatalf("expected modal to stay open")
	}
	if !m.toastIsErr || !strings.Contains(m.toast, "empty") {
		t.Fatalf("expected error toast, got %q", m.toast)
	}
}

func TestRenameHabitViaModal(t *testing.T) {
	m := setupTestDashboard(t)
	h := addHabit(t, &m, "Read")

	model, _ := m.Update(keyRunes('r'))
	m = model.(DashboardModel)
	if m.activeModal() != ModalHabitRename {
		t.Fatalf("expected rename modal, got %v", m.activeModal())
	}
	if m.inputs.nameInput.Value() != "Read" {
		t.Fatalf("expected name prefilled, got %q", m.inputs.nameInput.Value())
	}

	m.inputs.nameInput.SetValue("Read books")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(DashboardModel)

	if m.habits[0].Name != "Read books" {
		t.Fatalf("expected rename applied, got %q", m.habits[0].Name)
	}
	if m.habits[0].ID != h.ID {
		t.Fatalf("rename must keep the id")
	}
}

func TestDeleteFlowConfirm(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")

	model, _ := m.Update(keyRunes('d'))
	m = model.(DashboardModel)
	if m.activeModal() != ModalConfirm {
		t.Fatalf("expected confirm modal, got %v", m.activeModal())
	}

	model, _ = m.Update(keyRunes('y'))
	m = model.(DashboardModel)
	if m.modal != nil {
		t.Fatalf("expected modal closed")
	}
	if len(m.habits) != 0 {
		t.Fatalf("expected habit deleted, got %+v", m.habits)
	}
	if !strings.Contains(m.toast, "Deleted") {
		t.Fatalf("expected delete toast, got %q", m.toast)
	}
}

func TestDeleteFlowCancelKeepsHabit(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")

	model, _ := m.Update(keyRunes('d'))
	m = model.(DashboardModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(DashboardModel)

	if m.modal != nil {
		t.Fatalf("expected modal closed")
	}
	if len(m.habits) != 1 {
		t.Fatalf("expected habit kept")
	}
}

func TestNewTabToggle(t *testing.T) {
	m := setupTestDashboard(t)

	next, _, handled := m.handleNewTabToggle("n")
	if !handled {
		t.Fatalf("expected 'n' to be handled")
	}
	if !next.useAsNewTab || !next.store.UseAsNewTab() {
		t.Fatalf("expected new tab mode on")
	}

	next, _, _ = next.handleNewTabToggle("n")
	if next.useAsNewTab {
		t.Fatalf("expected new tab mode off")
	}
}

func TestExportKeyWritesFile(t *testing.T) {
	m := setupTestDashboard(t)
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())
	addHabit(t, &m, "Read")

	next, cmd, handled := m.handleExport("e")
	if !handled {
		t.Fatalf("expected 'e' to be handled")
	}
	if cmd == nil {
		t.Fatalf("expected a toast command")
	}
	if next.toastIsErr {
		t.Fatalf("export failed: %q", next.toast)
	}
	path := strings.TrimPrefix(next.toast, "Export saved: ")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected export file: %v", err)
	}
	env, err := habit.ParseEnvelope(data)
	if err != nil {
		t.Fatalf("export not importable: %v", err)
	}
	if len(env.Habits) != 1 || env.Habits[0].Name != "Read" {
		t.Fatalf("unexpected export contents: %+v", env.Habits)
	}
}

func TestReportKeyGeneratesPDF(t *testing.T) {
	m := setupTestDashboard(t)
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())
	addHabit(t, &m, "Read")

	next, _, handled := m.handleReport("p")
	if !handled {
		t.Fatalf("expected 'p' to be handled")
	}
	if next.toastIsErr {
		t.Fatalf("report failed: %q", next.toast)
	}
	path := strings.TrimPrefix(next.toast, "Report generated: ")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty report")
	}
}
