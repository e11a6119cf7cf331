package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/testutil"
	"github.com/akyairhashvil/HABT/internal/util"
)

func windowDates(end time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, util.AddDays(util.Midnight(end), -i))
	}
	return dates
}

func TestGenerateWritesReport(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.Local)
	habits := []models.Habit{
		testutil.NewHabit().WithID("a").WithName("Read").Build(),
		testutil.NewHabit().WithID("b").WithName("A very long habit name that will not fit in the column").WithOrder(1).Build(),
	}
	completions := testutil.NewCompletions().
		WithDoneRun("a", now, 2).
		With("a", "2024-03-18", models.StateSkipped).
		Build()

	dir := t.TempDir()
	path, err := Generate(habits, completions, windowDates(now, 14), "Last 14 days", now, dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if filepath.Base(path) != "habit_report_2024-03-20.pdf" {
		t.Fatalf("unexpected report name %q", filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report is empty")
	}
}

func TestGenerateWithNoHabits(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.Local)
	dir := t.TempDir()
	path, err := Generate(nil, nil, windowDates(now, 14), "Last 14 days", now, dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}

func TestGenerateToExplicitPath(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.Local)
	path := filepath.Join(t.TempDir(), "out", "weekly.pdf")
	if err := GenerateTo(path, nil, nil, windowDates(now, 14), "Last 14 days", now); err != nil {
		t.Fatalf("GenerateTo failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}

func TestGenerateCreatesDirectory(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.Local)
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	if _, err := Generate(nil, nil, windowDates(now, 14), "Last 14 days", now, dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestTruncateName(t *testing.T) {
	if got := truncateName("Read"); got != "Read" {
		t.Fatalf("short name changed: %q", got)
	}
	long := "This habit name is far too long for the report column"
	got := truncateName(long)
	if len([]rune(got)) != maxNameChars {
		t.Fatalf("expected %d runes, got %d (%q)", maxNameChars, len([]rune(got)), got)
	}
}
