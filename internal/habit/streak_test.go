package habit

import (
	"testing"
	"time"

	"github.com/akyairhashvil/HABT/internal/models"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.Local)
}

func TestCalcStreaksEmptyMap(t *testing.T) {
	got := CalcStreaks(models.DateMap{}, localDate(2024, 1, 4))
	if got.Current != 0 || got.Longest != 0 {
		t.Fatalf("expected 0/0 for empty map, got %+v", got)
	}
}

func TestCalcStreaksSkippedDayBreaksRun(t *testing.T) {
	days := models.DateMap{
		"2024-01-01": models.StateDone,
		"2024-01-02": models.StateDone,
		"2024-01-03": models.StateSkipped,
		"2024-01-04": models.StateDone,
	}
	got := CalcStreaks(days, localDate(2024, 1, 4))
	if got.Current != 1 {
		t.Fatalf("expected current 1, got %d", got.Current)
	}
	if got.Longest != 2 {
		t.Fatalf("expected longest 2, got %d", got.Longest)
	}
}

func TestCalcStreaksSingleDoneToday(t *testing.T) {
	days := models.DateMap{"2024-01-04": models.StateDone}
	got := CalcStreaks(days, localDate(2024, 1, 4))
	if got.Current != 1 || got.Longest != 1 {
		t.Fatalf("expected 1/1, got %+v", got)
	}
}

func TestCalcStreaksAnchoredAtYesterday(t *testing.T) {
	days := models.DateMap{
		"2024-01-02": models.StateDone,
		"2024-01-03": models.StateDone,
	}
	got := CalcStreaks(days, localDate(2024, 1, 4))
	if got.Current != 2 {
		t.Fatalf("a streak ending yesterday still counts, got %d", got.Current)
	}
}

func TestCalcStreaksStaleAnchorResetsCurrent(t *testing.T) {
	days := models.DateMap{
		"2024-01-01": models.StateDone,
		"2024-01-02": models.StateDone,
	}
	got := CalcStreaks(days, localDate(2024, 1, 5))
	if got.Current != 0 {
		t.Fatalf("a streak ending before yesterday is broken, got %d", got.Current)
	}
	if got.Longest != 2 {
		t.Fatalf("longest must survive the break, got %d", got.Longest)
	}
}

func TestCalcStreaksLongestAcrossRuns(t *testing.T) {
	days := models.DateMap{
		"2024-01-01": models.StateDone,
		"2024-01-02": models.StateDone,
		"2024-01-03": models.StateDone,
		"2024-01-10": models.StateDone,
		"2024-01-11": models.StateDone,
	}
	got := CalcStreaks(days, localDate(2024, 2, 1))
	if got.Current != 0 || got.Longest != 3 {
		t.Fatalf("expected 0/3, got %+v", got)
	}
}

func TestCalcStreaksSkippedOnlyMap(t *testing.T) {
	days := models.DateMap{
		"2024-01-03": models.StateSkipped,
		"2024-01-04": models.StateSkipped,
	}
	got := CalcStreaks(days, localDate(2024, 1, 4))
	if got.Current != 0 || got.Longest != 0 {
		t.Fatalf("skipped days never contribute, got %+v", got)
	}
}

func TestCalcStreaksIgnoresMalformedKeys(t *testing.T) {
	days := models.DateMap{
		"not-a-date": models.StateDone,
		"2024-01-04": models.StateDone,
	}
	got := CalcStreaks(days, localDate(2024, 1, 4))
	if got.Current != 1 || got.Longest != 1 {
		t.Fatalf("malformed keys must be skipped, got %+v", got)
	}
}
