package tui

import "github.com/akyairhashvil/HABT/internal/habit"

type ModalType int

const (
	ModalNone ModalType = iota
	ModalHabitAdd
	ModalHabitRename
	ModalConfirm
	ModalImportPath
	ModalImportPass
	ModalTheme
)

// ModalState is the currently open modal, if any. Text entry for the
// input-backed modals lives in InputState; the states here carry only
// what the modal needs to resolve.
type ModalState interface {
	Type() ModalType
}

type HabitAddState struct{}

func (s *HabitAddState) Type() ModalType { return ModalHabitAdd }

type HabitRenameState struct {
	HabitID string
}

func (s *HabitRenameState) Type() ModalType { return ModalHabitRename }

// ConfirmState gates a destructive action behind an explicit yes.
type ConfirmState struct {
	Pending *habit.Pending
	Success string
}

func (s *ConfirmState) Type() ModalType { return ModalConfirm }

type ImportPathState struct{}

func (s *ImportPathState) Type() ModalType { return ModalImportPath }

// ImportPassState holds the already-read encrypted file contents while
// the passphrase is collected.
type ImportPassState struct {
	Path    string
	Data    []byte
	Message string
}

func (s *ImportPassState) Type() ModalType { return ModalImportPass }

type ThemeState struct {
	Cursor int
}

func (s *ThemeState) Type() ModalType { return ModalTheme }
