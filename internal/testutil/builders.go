package testutil

import (
	"time"

	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/util"
)

// HabitBuilder provides a fluent API for creating test habits.
type HabitBuilder struct {
	habit models.Habit
}

func NewHabit() *HabitBuilder {
	return &HabitBuilder{
		habit: models.Habit{
			ID:        "habit-1",
			Name:      "Test Habit",
			CreatedAt: time.Now(),
		},
	}
}

func (b *HabitBuilder) WithID(id string) *HabitBuilder {
	b.habit.ID = id
	return b
}

func (b *HabitBuilder) WithName(name string) *HabitBuilder {
	b.habit.Name = name
	return b
}

func (b *HabitBuilder) WithOrder(order int) *HabitBuilder {
	b.habit.Order = order
	return b
}

func (b *HabitBuilder) Build() models.Habit {
	return b.habit
}

// CompletionsBuilder provides a fluent API for creating test completion
// maps.
type CompletionsBuilder struct {
	completions models.CompletionMap
}

func NewCompletions() *CompletionsBuilder {
	return &CompletionsBuilder{completions: models.CompletionMap{}}
}

// With records a single day state for a habit.
func (b *CompletionsBuilder) With(habitID, dateKey string, state models.State) *CompletionsBuilder {
	if b.completions[habitID] == nil {
		b.completions[habitID] = models.DateMap{}
	}
	b.completions[habitID][dateKey] = state
	return b
}

// WithDoneRun records n consecutive done days ending at end.
func (b *CompletionsBuilder) WithDoneRun(habitID string, end time.Time, n int) *CompletionsBuilder {
	for i := 0; i < n; i++ {
		b.With(habitID, util.DateKey(util.AddDays(end, -i)), models.StateDone)
	}
	return b
}

func (b *CompletionsBuilder) Build() models.CompletionMap {
	return b.completions
}
