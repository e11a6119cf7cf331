package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/util"
)

// Snapshot is the full persisted data set read at startup.
type Snapshot struct {
	Habits      []models.Habit
	Completions models.CompletionMap
	// Migrated reports that the completion blob was stored in a legacy or
	// invalid shape and should be re-persisted in canonical form.
	Migrated    bool
	UseAsNewTab bool
}

// LoadHabits reads the habit list. An absent blob is an empty list.
func (d *Database) LoadHabits(ctx context.Context) ([]models.Habit, error) {
	raw, ok, err := d.getBlob(ctx, config.KeyHabits)
	if err != nil {
		return nil, wrapBlobErr("load", config.KeyHabits, err)
	}
	if !ok {
		return []models.Habit{}, nil
	}

	var habits []models.Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		return nil, wrapBlobErr("decode", config.KeyHabits, ErrCorruptData)
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	return habits, nil
}

// SaveHabits replaces the stored habit list.
func (d *Database) SaveHabits(ctx context.Context, habits []models.Habit) error {
	if habits == nil {
		habits = []models.Habit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return wrapBlobErr("encode", config.KeyHabits, err)
	}
	return wrapBlobErr("save", config.KeyHabits, d.setBlob(ctx, config.KeyHabits, string(data)))
}

// LoadCompletions reads the completion map. The decoder accepts both the
// canonical per-habit date map and the legacy form (a plain list of date
// strings, each implying done); the second return reports whether anything
// was migrated or dropped and therefore needs re-persisting.
func (d *Database) LoadCompletions(ctx context.Context) (models.CompletionMap, bool, error) {
	raw, ok, err := d.getBlob(ctx, config.KeyCompletions)
	if err != nil {
		return nil, false, wrapBlobErr("load", config.KeyCompletions, err)
	}
	if !ok {
		return models.CompletionMap{}, false, nil
	}

	completions, migrated, err := DecodeCompletions([]byte(raw))
	if err != nil {
		return nil, false, wrapBlobErr("decode", config.KeyCompletions, err)
	}
	return completions, migrated, nil
}

// SaveCompletions replaces the stored completion map.
func (d *Database) SaveCompletions(ctx context.Context, completions models.CompletionMap) error {
	if completions == nil {
		completions = models.CompletionMap{}
	}
	data, err := json.Marshal(completions)
	if err != nil {
		return wrapBlobErr("encode", config.KeyCompletions, err)
	}
	return wrapBlobErr("save", config.KeyCompletions, d.setBlob(ctx, config.KeyCompletions, string(data)))
}

// UseAsNewTab reads the preference flag. Absent means false.
func (d *Database) UseAsNewTab(ctx context.Context) (bool, error) {
	raw, ok, err := d.getBlob(ctx, config.KeyUseAsNewTab)
	if err != nil {
		return false, wrapBlobErr("load", config.KeyUseAsNewTab, err)
	}
	if !ok {
		return false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, nil
	}
	return util.IntToBool(n), nil
}

// SetUseAsNewTab writes the preference flag.
func (d *Database) SetUseAsNewTab(ctx context.Context, enabled bool) error {
	value := strconv.Itoa(util.BoolToInt(enabled))
	return wrapBlobErr("save", config.KeyUseAsNewTab, d.setBlob(ctx, config.KeyUseAsNewTab, value))
}

// LoadAll reads the three persisted values concurrently.
func (d *Database) LoadAll(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		habits, err := d.LoadHabits(ctx)
		snap.Habits = habits
		return err
	})
	g.Go(func() error {
		completions, migrated, err := d.LoadCompletions(ctx)
		snap.Completions = completions
		snap.Migrated = migrated
		return err
	})
	g.Go(func() error {
		enabled, err := d.UseAsNewTab(ctx)
		snap.UseAsNewTab = enabled
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// DecodeCompletions converts a raw completion blob to the canonical map
// form. Legacy date lists become done-entries; state values other than
// done/skipped are dropped. Exported so the import codec can reuse the
// same tolerant decoding.
func DecodeCompletions(raw []byte) (models.CompletionMap, bool, error) {
	var byHabit map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byHabit); err != nil {
		return nil, false, ErrCorruptData
	}

	completions := make(models.CompletionMap, len(byHabit))
	migrated := false
	for habitID, entry := range byHabit {
		days := models.DateMap{}

		var dates []string
		if err := json.Unmarshal(entry, &dates); err == nil {
			// Legacy form: a bare list of dates, each meaning done.
			for _, key := range dates {
				days[key] = models.StateDone
			}
			migrated = true
			completions[habitID] = days
			continue
		}

		var states map[string]models.State
		if err := json.Unmarshal(entry, &states); err != nil {
			// Unrecognized shape; treat as untracked and rewrite.
			migrated = true
			completions[habitID] = days
			continue
		}
		for key, state := range states {
			if !state.Valid() {
				migrated = true
				continue
			}
			days[key] = state
		}
		completions[habitID] = days
	}
	return completions, migrated, nil
}
