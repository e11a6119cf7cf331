package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderThemePane draws the theme picker as a full-width pane above the
// footer. Only the picker needs a pane; every other modal fits in the
// footer box.
func (m DashboardModel) renderThemePane() string {
	state, ok := m.modal.(*ThemeState)
	if !ok {
		return ""
	}

	var content strings.Builder
	content.WriteString(m.theme.Focused.Render("Themes") + "\n")
	content.WriteString(m.theme.Dim.Render("Use ↑/↓ to select, Enter to apply") + "\n\n")
	for i, name := range m.themeNames {
		cursor := "  "
		if i == state.Cursor {
			cursor = "> "
		}
		marker := " "
		if Themes[name].Name == m.theme.Name {
			marker = "*"
		}
		content.WriteString(fmt.Sprintf("%s[%s] %s\n", cursor, marker, name))
	}

	themeFrame := Frames.Modal.BorderForeground(m.theme.Border)
	themeExtraWidth := lipgloss.Width(themeFrame.Render(""))
	themeWidth := m.width - themeExtraWidth
	if themeWidth < 1 {
		themeWidth = 1
	}
	return themeFrame.Width(themeWidth).Render(strings.TrimRight(content.String(), "\n"))
}
