package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setupTestDashboard(t *testing.T) DashboardModel {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	store := habit.NewStore(db, zap.NewNop())
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(store.Close)

	m := NewDashboardModel(store, zap.NewNop(), "default")
	m.width = 100
	m.height = 40
	return m
}

func addHabit(t *testing.T, m *DashboardModel, name string) models.Habit {
	t.Helper()
	h, ok := m.store.Add(name)
	if !ok {
		t.Fatalf("Add(%q) failed", name)
	}
	m.refreshData()
	return h
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyRoutingAddHabit(t *testing.T) {
	m := setupTestDashboard(t)
	model, _ := m.Update(keyRunes('a'))
	updated, ok := model.(DashboardModel)
	if !ok {
		t.Fatalf("expected DashboardModel, got %T", model)
	}
	if updated.activeModal() != ModalHabitAdd {
		t.Fatalf("expected add modal, got %v", updated.activeModal())
	}
}

func TestKeyRoutingImport(t *testing.T) {
	m := setupTestDashboard(t)
	model, _ := m.Update(keyRunes('i'))
	updated := model.(DashboardModel)
	if updated.activeModal() != ModalImportPath {
		t.Fatalf("expected import path modal, got %v", updated.activeModal())
	}
}

func TestKeyRoutingThemePicker(t *testing.T) {
	m := setupTestDashboard(t)
	model, _ := m.Update(keyRunes('T'))
	updated := model.(DashboardModel)
	if updated.activeModal() != ModalTheme {
		t.Fatalf("expected theme modal, got %v", updated.activeModal())
	}
}

func TestWindowSizeIsStored(t *testing.T) {
	m := setupTestDashboard(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 72, Height: 20})
	updated := model.(DashboardModel)
	if updated.width != 72 || updated.height != 20 {
		t.Fatalf("expected 72x20, got %dx%d", updated.width, updated.height)
	}
}

func TestKeypressClearsToast(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")
	m.toast = "Saved"
	model, _ := m.Update(keyRunes('j'))
	updated := model.(DashboardModel)
	if updated.toast != "" {
		t.Fatalf("expected toast cleared, got %q", updated.toast)
	}
}

func TestToastExpiryIgnoresStaleSeq(t *testing.T) {
	m := setupTestDashboard(t)
	m.setToast("first", false)
	m.setToast("second", false)

	model, _ := m.Update(toastExpiredMsg{seq: m.toastSeq - 1})
	updated := model.(DashboardModel)
	if updated.toast != "second" {
		t.Fatalf("stale expiry must not clear a newer toast, got %q", updated.toast)
	}

	model, _ = updated.Update(toastExpiredMsg{seq: updated.toastSeq})
	updated = model.(DashboardModel)
	if updated.toast != "" {
		t.Fatalf("expected toast cleared, got %q", updated.toast)
	}
}

func TestPersistFailureSurfacesToast(t *testing.T) {
	m := setupTestDashboard(t)
	model, _ := m.Update(persistFailedMsg{err: errors.New("disk full")})
	updated := model.(DashboardModel)
	if !strings.Contains(updated.toast, "disk full") {
		t.Fatalf("expected persist failure toast, got %q", updated.toast)
	}
	if !updated.toastIsErr {
		t.Fatalf("expected error toast")
	}
}

func TestThemeModalAppliesSelection(t *testing.T) {
	m := setupTestDashboard(t)
	model, _ := m.Update(keyRunes('T'))
	m = model.(DashboardModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(DashboardModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(DashboardModel)

	if m.modal != nil {
		t.Fatalf("expected modal closed")
	}
	if m.theme.Name != "Dracula" {
		t.Fatalf("expected Dracula theme, got %q", m.theme.Name)
	}
}
