package habit

import (
	"sort"
	"time"

	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/util"
)

// Streak holds the derived streak figures for one habit.
type Streak struct {
	Current int
	Longest int
}

// CalcStreaks derives the current and longest run of consecutive done-days
// from one habit's date map, evaluated as of today. Skipped days are
// treated exactly like untracked ones: both are simply gaps. The current
// streak is zero unless the most recent done-day is today or yesterday.
func CalcStreaks(days models.DateMap, today time.Time) Streak {
	done := make([]time.Time, 0, len(days))
	for key, state := range days {
		if state != models.StateDone {
			continue
		}
		date, err := util.ParseDateKey(key)
		if err != nil {
			continue
		}
		done = append(done, date)
	}
	if len(done) == 0 {
		return Streak{}
	}
	sort.Slice(done, func(i, j int) bool { return done[i].Before(done[j]) })

	longest, run := 1, 1
	for i := 1; i < len(done); i++ {
		if util.AddDays(done[i-1], 1).Equal(done[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current := 0
	midnight := util.Midnight(today)
	yesterday := util.AddDays(midnight, -1)
	latest := done[len(done)-1]
	if latest.Equal(midnight) || latest.Equal(yesterday) {
		current = 1
		for i := len(done) - 2; i >= 0; i-- {
			if util.AddDays(done[i], 1).Equal(done[i+1]) {
				current++
			} else {
				break
			}
		}
	}

	return Streak{Current: current, Longest: longest}
}
