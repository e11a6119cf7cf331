package tui

import (
	"testing"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/util"
)

func TestArrowKeysClampRows(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")
	addHabit(t, &m, "Run")

	next, handled := m.handleArrowKeys("up")
	if !handled {
		t.Fatalf("expected up to be handled")
	}
	if next.focusRow != 0 {
		t.Fatalf("expected row pinned at 0, got %d", next.focusRow)
	}

	next, _ = next.handleArrowKeys("down")
	next, _ = next.handleArrowKeys("down")
	if next.focusRow != 1 {
		t.Fatalf("expected row clamped to last habit, got %d", next.focusRow)
	}
}

func TestLeftAtOldestColumnPagesBack(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")
	m.focusCol = 0
	end := m.window.End()

	next, _ := m.handleArrowKeys("left")
	if next.focusCol != config.WindowDays-1 {
		t.Fatalf("expected focus on newest column, got %d", next.focusCol)
	}
	want := util.AddDays(end, -config.WindowDays)
	if !next.window.End().Equal(want) {
		t.Fatalf("expected window end %v, got %v", want, next.window.End())
	}
}

func TestRightAtNewestColumnStaysOnToday(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")
	m.focusCol = config.WindowDays - 1
	end := m.window.End()

	next, _ := m.handleArrowKeys("right")
	if next.focusCol != config.WindowDays-1 {
		t.Fatalf("expected focus to stay, got %d", next.focusCol)
	}
	if !next.window.End().Equal(end) {
		t.Fatalf("window must not page past today")
	}
}

func TestRightAfterPagingBackPagesForward(t *testing.T) {
	m := setupTestDashboard(t)
	addHabit(t, &m, "Read")
	m.window.PageBack()
	m.focusCol = config.WindowDays - 1

	next, _ := m.handleArrowKeys("right")
	if next.focusCol != 0 {
		t.Fatalf("expected focus on oldest column after paging, got %d", next.focusCol)
	}
	if !next.window.OnToday() {
		t.Fatalf("expected window back on today")
	}
}

func TestPagingKeys(t *testing.T) {
	m := setupTestDashboard(t)
	end := m.window.End()

	next, handled := m.handlePaging("[")
	if !handled {
		t.Fatalf("expected '[' to be handled")
	}
	if !next.window.End().Equal(util.AddDays(end, -config.WindowDays)) {
		t.Fatalf("expected window paged back")
	}

	next, _ = next.handlePaging("t")
	if !next.window.OnToday() {
		t.Fatalf("expected 't' to return to today")
	}
	if next.focusCol != config.WindowDays-1 {
		t.Fatalf("expected focus reset to newest column")
	}
}
