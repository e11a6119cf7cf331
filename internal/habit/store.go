// Package habit owns the in-memory habit list and completion map and every
// mutation on them. The store applies mutations synchronously, then hands a
// snapshot of the affected blob(s) to a background writer; the UI therefore
// always sees the latest applied state and persistence failures surface
// only as notices. The store is built for a single-goroutine event loop and
// is not safe for concurrent mutation.
package habit

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/storage"
)

const persistQueueSize = 32

// Store is the single source of truth for one session's habit data.
type Store struct {
	repo   storage.Repository
	logger *zap.Logger

	habits      []models.Habit
	completions models.CompletionMap
	useAsNewTab bool

	now   func() time.Time
	newID func() string

	jobs      chan persistJob
	errs      chan error
	done      chan struct{}
	listeners []func(Event)
	closed    bool
}

// persistJob carries immutable snapshots for the background writer. Nil
// fields are skipped; ack, when set, is closed once the job is handled.
type persistJob struct {
	habits      []models.Habit
	completions models.CompletionMap
	flag        *bool
	ack         chan struct{}
}

// NewStore creates a store over the given repository and starts its
// background writer. Callers must Close the store to flush queued writes.
func NewStore(repo storage.Repository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		repo:        repo,
		logger:      logger,
		completions: models.CompletionMap{},
		now:         time.Now,
		newID:       uuid.NewString,
		jobs:        make(chan persistJob, persistQueueSize),
		errs:        make(chan error, persistQueueSize),
		done:        make(chan struct{}),
	}
	go s.writer()
	return s
}

// Load reads the persisted data set into memory. When the stored
// completion blob needed migrating (legacy shape or invalid values) the
// canonical form is queued for persistence straight away.
func (s *Store) Load(ctx context.Context) error {
	snap, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.habits = snap.Habits
	sort.SliceStable(s.habits, func(i, j int) bool {
		return s.habits[i].Order < s.habits[j].Order
	})
	s.completions = snap.Completions
	if s.completions == nil {
		s.completions = models.CompletionMap{}
	}
	s.useAsNewTab = snap.UseAsNewTab

	if snap.Migrated {
		s.logger.Info("migrated legacy completion data",
			zap.Int("habits", len(s.completions)))
		s.persist(persistJob{completions: s.completions.Clone()})
	}
	return nil
}

// Close stops the background writer after flushing all queued writes.
func (s *Store) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.jobs)
	<-s.done
}

// Errors exposes background persistence failures as *PersistError values.
// The channel closes when the store does.
func (s *Store) Errors() <-chan error {
	return s.errs
}

// Flush blocks until every queued write has been handled.
func (s *Store) Flush() {
	ack := make(chan struct{})
	s.jobs <- persistJob{ack: ack}
	<-ack
}

// Add creates a habit from the trimmed name. An empty trimmed name is a
// silent no-op, reported by the second return.
func (s *Store) Add(name string) (models.Habit, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, false
	}

	habit := models.Habit{
		ID:        s.newID(),
		Name:      name,
		Order:     s.nextOrder(),
		CreatedAt: s.now(),
	}
	s.habits = append(s.habits, habit)
	s.completions[habit.ID] = models.DateMap{}

	s.persistBoth()
	s.notify(Event{Kind: EventAdded, HabitID: habit.ID})
	return habit, true
}

// Rename sets a habit's name to the trimmed value. Unknown ids and empty
// trimmed names are silent no-ops.
func (s *Store) Rename(id, newName string) bool {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.habits[idx].Name = newName
	s.persist(persistJob{habits: models.CloneHabits(s.habits)})
	s.notify(Event{Kind: EventRenamed, HabitID: id})
	return true
}

// RequestDelete returns a pending action that removes the habit and its
// completion history once confirmed. Unknown ids return nil.
func (s *Store) RequestDelete(id string) *Pending {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	return &Pending{
		kind:    PendingDelete,
		store:   s,
		habitID: id,
		label:   deleteLabel(s.habits[idx].Name),
	}
}

func (s *Store) applyDelete(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	delete(s.completions, id)

	s.persistBoth()
	s.notify(Event{Kind: EventDeleted, HabitID: id})
}

// ToggleState cycles one cell untracked -> done -> skipped -> untracked
// and returns the new state. Unknown ids are a silent no-op.
func (s *Store) ToggleState(id, dateKey string) (models.State, bool) {
	if s.indexOf(id) < 0 {
		return models.StateUntracked, false
	}
	days := s.completions[id]
	if days == nil {
		days = models.DateMap{}
		s.completions[id] = days
	}

	next := s.StateOf(id, dateKey).Next()
	if next == models.StateUntracked {
		delete(days, dateKey)
	} else {
		days[dateKey] = next
	}

	s.persist(persistJob{completions: s.completions.Clone()})
	s.notify(Event{Kind: EventToggled, HabitID: id})
	return next, true
}

// Reorder moves the habit at from to position to and reassigns every
// habit's order to its list position. Out-of-range indices are a silent
// no-op.
func (s *Store) Reorder(from, to int) bool {
	if from < 0 || from >= len(s.habits) || to < 0 || to >= len(s.habits) {
		return false
	}

	moved := s.habits[from]
	s.habits = append(s.habits[:from], s.habits[from+1:]...)
	s.habits = append(s.habits[:to], append([]models.Habit{moved}, s.habits[to:]...)...)
	for i := range s.habits {
		s.habits[i].Order = i
	}

	s.persist(persistJob{habits: models.CloneHabits(s.habits)})
	s.notify(Event{Kind: EventReordered})
	return true
}

// StateOf returns the recorded state of one habit on one day.
func (s *Store) StateOf(id, dateKey string) models.State {
	if days, ok := s.completions[id]; ok {
		if state, ok := days[dateKey]; ok && state.Valid() {
			return state
		}
	}
	return models.StateUntracked
}

// Streaks derives the current and longest streak for one habit.
func (s *Store) Streaks(id string) Streak {
	return CalcStreaks(s.completions[id], s.now())
}

// Habits returns the habit list in display order.
func (s *Store) Habits() []models.Habit {
	return models.CloneHabits(s.habits)
}

// Completions returns a deep copy of the completion map.
func (s *Store) Completions() models.CompletionMap {
	return s.completions.Clone()
}

// Export serializes the current data set as a versioned envelope.
func (s *Store) Export() ([]byte, error) {
	return Export(s.Habits(), s.Completions(), s.now())
}

// RequestImport returns a pending action that replaces the full data set
// with the validated envelope once confirmed.
func (s *Store) RequestImport(env Envelope) *Pending {
	return &Pending{
		kind:     PendingImport,
		store:    s,
		label:    importLabel(&env),
		envelope: &env,
	}
}

func (s *Store) applyImport(env *Envelope) {
	habits := models.CloneHabits(env.Habits)
	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].Order < habits[j].Order
	})
	completions := env.Completions.Clone()
	for _, h := range habits {
		if _, ok := completions[h.ID]; !ok {
			completions[h.ID] = models.DateMap{}
		}
	}

	s.habits = habits
	s.completions = completions

	s.persistBoth()
	s.notify(Event{Kind: EventReplaced})
}

// UseAsNewTab returns the cached preference flag.
func (s *Store) UseAsNewTab() bool {
	return s.useAsNewTab
}

// SetUseAsNewTab updates and persists the preference flag.
func (s *Store) SetUseAsNewTab(enabled bool) {
	s.useAsNewTab = enabled
	flag := enabled
	s.persist(persistJob{flag: &flag})
}

func (s *Store) nextOrder() int {
	max := -1
	for _, h := range s.habits {
		if h.Order > max {
			max = h.Order
		}
	}
	return max + 1
}

func (s *Store) indexOf(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistBoth() {
	s.persist(persistJob{
		habits:      models.CloneHabits(s.habits),
		completions: s.completions.Clone(),
	})
}

func (s *Store) persist(job persistJob) {
	s.jobs <- job
}

func (s *Store) writer() {
	defer close(s.done)
	defer close(s.errs)
	for job := range s.jobs {
		ctx := context.Background()
		if job.habits != nil {
			if err := s.repo.SaveHabits(ctx, job.habits); err != nil {
				s.reportPersistErr(config.KeyHabits, err)
			}
		}
		if job.completions != nil {
			if err := s.repo.SaveCompletions(ctx, job.completions); err != nil {
				s.reportPersistErr(config.KeyCompletions, err)
			}
		}
		if job.flag != nil {
			if err := s.repo.SetUseAsNewTab(ctx, *job.flag); err != nil {
				s.reportPersistErr(config.KeyUseAsNewTab, err)
			}
		}
		if job.ack != nil {
			close(job.ack)
		}
	}
}

func (s *Store) reportPersistErr(key string, err error) {
	s.logger.Warn("persist failed", zap.String("key", key), zap.Error(err))
	select {
	case s.errs <- &PersistError{Key: key, Err: err}:
	default:
	}
}
