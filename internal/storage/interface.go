package storage

import (
	"context"

	"github.com/akyairhashvil/HABT/internal/models"
)

// HabitRepository defines habit-list persistence operations.
type HabitRepository interface {
	LoadHabits(ctx context.Context) ([]models.Habit, error)
	SaveHabits(ctx context.Context, habits []models.Habit) error
}

// CompletionRepository defines completion-map persistence operations.
type CompletionRepository interface {
	LoadCompletions(ctx context.Context) (models.CompletionMap, bool, error)
	SaveCompletions(ctx context.Context, completions models.CompletionMap) error
}

// PreferenceRepository defines preference-flag persistence operations.
type PreferenceRepository interface {
	UseAsNewTab(ctx context.Context) (bool, error)
	SetUseAsNewTab(ctx context.Context, enabled bool) error
}

// Repository combines all persistence interfaces.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	HabitRepository
	CompletionRepository
	PreferenceRepository
	LoadAll(ctx context.Context) (Snapshot, error)
	Close() error
}

var _ Repository = (*Database)(nil)
