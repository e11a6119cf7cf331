package habit

import "fmt"

// PendingKind enumerates destructive operations that need confirmation.
type PendingKind int

const (
	PendingDelete PendingKind = iota
	PendingImport
)

// Pending is a two-phase token for a destructive operation. Nothing is
// mutated until Confirm; Cancel (or dropping the token) leaves the store
// untouched. A token resolves at most once.
type Pending struct {
	kind     PendingKind
	store    *Store
	habitID  string
	label    string
	envelope *Envelope
	resolved bool
}

// Kind returns the kind of operation awaiting confirmation.
func (p *Pending) Kind() PendingKind { return p.kind }

// Label returns a human-readable description for confirmation prompts.
func (p *Pending) Label() string { return p.label }

// Confirm applies the operation. It reports false when the token was
// already resolved.
func (p *Pending) Confirm() bool {
	if p == nil || p.resolved {
		return false
	}
	p.resolved = true
	switch p.kind {
	case PendingDelete:
		p.store.applyDelete(p.habitID)
	case PendingImport:
		p.store.applyImport(p.envelope)
	}
	return true
}

// Cancel resolves the token without applying anything.
func (p *Pending) Cancel() {
	if p == nil {
		return
	}
	p.resolved = true
}

func deleteLabel(name string) string {
	return fmt.Sprintf("Delete %q and all of its history?", name)
}

func importLabel(env *Envelope) string {
	days := 0
	for _, dates := range env.Completions {
		days += len(dates)
	}
	return fmt.Sprintf("Replace all data with %d habits (%d tracked days)?", len(env.Habits), days)
}
