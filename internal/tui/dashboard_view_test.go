package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/HABT/internal/util"
)

func TestViewBeforeFirstResize(t *testing.T) {
	m := setupTestDashboard(t)
	m.width = 0
	if got := m.View(); got != "Initializing..." {
		t.Fatalf("expected init placeholder, got %q", got)
	}
}

func TestViewShowsWelcomeWhenEmpty(t *testing.T) {
	m := setupTestDashboard(t)
	output := m.View()
	if !strings.Contains(output, "add your first habit") {
		t.Fatalf("expected welcome hint, got:\n%s", output)
	}
}

func TestViewShowsHabitGrid(t *testing.T) {
	m := setupTestDashboard(t)
	h := addHabit(t, &m, "Read")
	m.store.ToggleState(h.ID, util.DateKey(time.Now()))
	m.refreshData()

	output := m.View()
	if !strings.Contains(output, "Read") {
		t.Fatalf("expected habit name in view")
	}
	if !strings.Contains(output, "✓") {
		t.Fatalf("expected done mark in view")
	}
	if !strings.Contains(output, "Last 14 days") {
		t.Fatalf("expected range label in view")
	}
}

func TestViewShowsStreakLine(t *testing.T) {
	m := setupTestDashboard(t)
	h := addHabit(t, &m, "Read")
	m.store.ToggleState(h.ID, util.DateKey(time.Now()))
	m.refreshData()

	output := m.View()
	if !strings.Contains(output, "current streak 1") {
		t.Fatalf("expected streak line, got:\n%s", output)
	}
}

func TestViewShowsPlaceholderWhileAddingFirstHabit(t *testing.T) {
	m := setupTestDashboard(t)
	model, _ := m.Update(keyRunes('a'))
	m = model.(DashboardModel)

	output := m.View()
	if !strings.Contains(output, "New habit") {
		t.Fatalf("expected add prompt in footer, got:\n%s", output)
	}
	if !strings.Contains(output, "(no habits)") {
		t.Fatalf("expected empty grid placeholder")
	}
}
