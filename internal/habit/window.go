package habit

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/util"
)

// Window tracks the inclusive end date of the visible date range. Paging
// moves in whole windows; the end date never passes today.
type Window struct {
	viewEnd time.Time
	now     func() time.Time
}

// NewWindow returns a window anchored at today. The clock defaults to
// time.Now and is injectable for tests.
func NewWindow(now func() time.Time) *Window {
	if now == nil {
		now = time.Now
	}
	w := &Window{now: now}
	w.ResetToToday()
	return w
}

// End returns the window's inclusive end date (midnight local).
func (w *Window) End() time.Time { return w.viewEnd }

// VisibleDates returns the window's dates oldest first, each normalized to
// midnight local time.
func (w *Window) VisibleDates() []time.Time {
	dates := make([]time.Time, config.WindowDays)
	for i := range dates {
		dates[i] = util.AddDays(w.viewEnd, i-(config.WindowDays-1))
	}
	return dates
}

// PageBack moves the window one full page into the past, unconditionally.
func (w *Window) PageBack() {
	w.viewEnd = util.AddDays(w.viewEnd, -config.WindowDays)
}

// PageForward moves the window one full page toward the present, clamping
// the end date to today.
func (w *Window) PageForward() {
	today := util.Midnight(w.now())
	next := util.AddDays(w.viewEnd, config.WindowDays)
	if next.After(today) {
		next = today
	}
	w.viewEnd = next
}

// ResetToToday re-anchors the window at today.
func (w *Window) ResetToToday() {
	w.viewEnd = util.Midnight(w.now())
}

// OnToday reports whether the window currently ends at today.
func (w *Window) OnToday() bool {
	return util.SameDay(w.viewEnd, w.now())
}

// RangeLabel renders the window for the header: a fixed label while
// anchored at today, otherwise a start-end range collapsing the month name
// when both dates share one, with the year appended for past years.
func (w *Window) RangeLabel() string {
	if w.OnToday() {
		return fmt.Sprintf("Last %d days", config.WindowDays)
	}

	start := util.AddDays(w.viewEnd, -(config.WindowDays - 1))
	end := w.viewEnd

	var label string
	if start.Month() == end.Month() && start.Year() == end.Year() {
		label = fmt.Sprintf("%s %d - %d", start.Format("Jan"), start.Day(), end.Day())
	} else {
		label = fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
	}
	if end.Year() != w.now().Year() {
		label = fmt.Sprintf("%s, %d", label, end.Year())
	}
	return label
}
