package habit

// EventKind enumerates the mutations a store can apply.
type EventKind int

const (
	EventAdded EventKind = iota
	EventRenamed
	EventDeleted
	EventToggled
	EventReordered
	EventReplaced
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventRenamed:
		return "renamed"
	case EventDeleted:
		return "deleted"
	case EventToggled:
		return "toggled"
	case EventReordered:
		return "reordered"
	case EventReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Event describes one applied mutation. HabitID is empty for list-wide
// events (reorder, wholesale replace).
type Event struct {
	Kind    EventKind
	HabitID string
}

// Subscribe registers a listener invoked synchronously, in registration
// order, after each applied mutation. Listeners must not mutate the store.
func (s *Store) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}
