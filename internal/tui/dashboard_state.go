package tui

import (
	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
)

// InputState stores all text input models.
type InputState struct {
	nameInput textinput.Model
	pathInput textinput.Model
	passInput textinput.Model
}

func newInputState() *InputState {
	name := textinput.New()
	name.Placeholder = "Habit name..."
	name.CharLimit = config.MaxNameLength
	name.Width = 40

	path := textinput.New()
	path.Placeholder = "Path to export file..."
	path.CharLimit = config.MaxPathLength
	path.Width = 50

	pass := textinput.New()
	pass.Placeholder = "Passphrase"
	pass.EchoMode = textinput.EchoPassword
	pass.Width = 30

	return &InputState{
		nameInput: name,
		pathInput: path,
		passInput: pass,
	}
}

func (in *InputState) reset() {
	in.nameInput.Reset()
	in.pathInput.Reset()
	in.passInput.Reset()
	in.nameInput.Blur()
	in.pathInput.Blur()
	in.passInput.Blur()
}

func (m *DashboardModel) openModal(state ModalState) {
	m.modal = state
}

func (m *DashboardModel) closeModal() {
	m.modal = nil
	m.inputs.reset()
}

func (m DashboardModel) modalIs(t ModalType) bool {
	return m.modal != nil && m.modal.Type() == t
}

func (m DashboardModel) activeModal() ModalType {
	if m.modal == nil {
		return ModalNone
	}
	return m.modal.Type()
}
