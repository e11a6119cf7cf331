package habit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/storage"
)

// Envelope is the versioned export container. ExportedAt is informational
// and ignored on import.
type Envelope struct {
	Version     int                  `json:"version"`
	ExportedAt  time.Time            `json:"exportedAt"`
	Habits      []models.Habit       `json:"habits"`
	Completions models.CompletionMap `json:"completions"`
}

// FormatError rejects a malformed import payload. The whole import is
// abandoned; no partial state is ever applied.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid import: " + e.Reason
}

func formatErrf(format string, args ...interface{}) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// Export serializes habits and completions as an indented JSON envelope.
func Export(habits []models.Habit, completions models.CompletionMap, now time.Time) ([]byte, error) {
	if habits == nil {
		habits = []models.Habit{}
	}
	if completions == nil {
		completions = models.CompletionMap{}
	}
	env := Envelope{
		Version:     config.EnvelopeVersion,
		ExportedAt:  now,
		Habits:      habits,
		Completions: completions,
	}
	return json.MarshalIndent(env, "", "  ")
}

// ParseEnvelope validates an import payload into a typed envelope before
// any state is touched. Habits must be a list of objects carrying a
// non-empty string id and name; completions, when present, must be a
// mapping (per-habit values tolerate the legacy date-list form). Every
// violation is reported as a *FormatError.
func ParseEnvelope(data []byte) (Envelope, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return Envelope{}, formatErrf("payload is not a JSON object")
	}

	habitsRaw, ok := payload["habits"]
	if !ok || isJSONNull(habitsRaw) {
		return Envelope{}, formatErrf("habits is missing")
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(habitsRaw, &entries); err != nil {
		return Envelope{}, formatErrf("habits must be a list")
	}

	habits := make([]models.Habit, 0, len(entries))
	for i, entry := range entries {
		habit, err := parseHabit(i, entry)
		if err != nil {
			return Envelope{}, err
		}
		habits = append(habits, habit)
	}

	completions := models.CompletionMap{}
	if raw, ok := payload["completions"]; ok && !isJSONNull(raw) {
		decoded, _, err := storage.DecodeCompletions(raw)
		if err != nil {
			return Envelope{}, formatErrf("completions must be a mapping")
		}
		completions = decoded
	}

	env := Envelope{
		Version:     config.EnvelopeVersion,
		Habits:      habits,
		Completions: completions,
	}
	if raw, ok := payload["version"]; ok {
		var v int
		if err := json.Unmarshal(raw, &v); err == nil {
			env.Version = v
		}
	}
	if raw, ok := payload["exportedAt"]; ok {
		var at time.Time
		if err := json.Unmarshal(raw, &at); err == nil {
			env.ExportedAt = at
		}
	}
	return env, nil
}

// DecodeImport parses raw export file contents into an envelope,
// transparently unwrapping the encrypted form. ErrPassphraseNeeded is
// returned when the data is encrypted and no passphrase was given.
func DecodeImport(data []byte, passphrase string) (Envelope, error) {
	if IsEncrypted(data) {
		if passphrase == "" {
			return Envelope{}, ErrPassphraseNeeded
		}
		plain, err := DecryptEnvelope(data, passphrase)
		if err != nil {
			return Envelope{}, err
		}
		data = plain
	}
	return ParseEnvelope(data)
}

func parseHabit(i int, entry json.RawMessage) (models.Habit, error) {
	var fields struct {
		ID        json.RawMessage `json:"id"`
		Name      json.RawMessage `json:"name"`
		Order     json.RawMessage `json:"order"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(entry, &fields); err != nil {
		return models.Habit{}, formatErrf("habit %d must be an object", i)
	}

	var habit models.Habit
	if fields.ID == nil || json.Unmarshal(fields.ID, &habit.ID) != nil || habit.ID == "" {
		return models.Habit{}, formatErrf("habit %d needs a non-empty string id", i)
	}
	if fields.Name == nil || json.Unmarshal(fields.Name, &habit.Name) != nil || habit.Name == "" {
		return models.Habit{}, formatErrf("habit %d needs a non-empty string name", i)
	}

	// Order and createdAt are optional; malformed values fall back to
	// zero rather than rejecting the import.
	if fields.Order != nil {
		var order int
		if err := json.Unmarshal(fields.Order, &order); err == nil {
			habit.Order = order
		}
	}
	if fields.CreatedAt != nil {
		var at time.Time
		if err := json.Unmarshal(fields.CreatedAt, &at); err == nil {
			habit.CreatedAt = at
		}
	}
	return habit, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
