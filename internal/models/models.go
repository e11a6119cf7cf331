package models

import "time"

// State enumerates the tracked states of a habit on a given day.
// Untracked is the absence of an entry; only Done and Skipped are persisted.
type State string

const (
	StateDone      State = "done"
	StateSkipped   State = "skipped"
	StateUntracked State = "untracked"
)

// Valid reports whether s is a state that may be stored in a date map.
func (s State) Valid() bool {
	return s == StateDone || s == StateSkipped
}

// Next returns the successor in the toggle cycle
// untracked -> done -> skipped -> untracked.
func (s State) Next() State {
	switch s {
	case StateUntracked:
		return StateDone
	case StateDone:
		return StateSkipped
	default:
		return StateUntracked
	}
}

// Habit represents a single recurring activity tracked per calendar day.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateMap maps canonical YYYY-MM-DD date keys to a stored state.
// A missing key means the day is untracked.
type DateMap map[string]State

// CompletionMap maps habit IDs to their per-day records.
type CompletionMap map[string]DateMap

// Clone returns a deep copy of the date map. A nil map clones to an empty one.
func (m DateMap) Clone() DateMap {
	out := make(DateMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the completion map.
func (c CompletionMap) Clone() CompletionMap {
	out := make(CompletionMap, len(c))
	for id, days := range c {
		out[id] = days.Clone()
	}
	return out
}

// CloneHabits returns a copy of the habit slice.
func CloneHabits(habits []Habit) []Habit {
	out := make([]Habit, len(habits))
	copy(out, habits)
	return out
}
