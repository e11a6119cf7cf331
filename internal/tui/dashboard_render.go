package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	// A store with no habits and nothing in flight gets the welcome screen.
	// As soon as a modal or toast appears the regular layout takes over so
	// the footer can show it.
	if len(m.habits) == 0 && m.modal == nil && m.toast == "" {
		return m.renderWelcome()
	}

	header := m.renderHeader()
	grid := m.renderGrid()
	streak := m.renderStreakLine()
	pane := m.renderThemePane()
	footer := m.renderFooter()

	var lines []string
	lines = append(lines, splitLines(header)...)
	if len(m.habits) == 0 {
		lines = append(lines, "", m.theme.Dim.Render("  (no habits)"))
	} else {
		lines = append(lines, splitLines(grid)...)
		if streak != "" {
			lines = append(lines, "", streak)
		}
	}
	if pane != "" {
		lines = append(lines, splitLines(pane)...)
	}
	lines = append(lines, splitLines(footer)...)

	if m.height > 0 {
		if len(lines) > m.height {
			lines = lines[:m.height]
		} else if len(lines) < m.height {
			lines = append(lines, make([]string, m.height-len(lines))...)
		}
	}
	return "\x1b[H\x1b[2J" + strings.Join(lines, "\n")
}

func (m DashboardModel) renderWelcome() string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("Welcome to %s v%s", renderLogo(), versionLabel()) + "\n\n")
	content.WriteString("No habits tracked yet." + "\n")
	content.WriteString(m.theme.Dim.Render("Press [a] to add your first habit."))

	welcomeFrame := Frames.Welcome.BorderForeground(m.theme.Border)
	box := welcomeFrame.Render(content.String())
	height := m.height
	if min := lipgloss.Height(box); height < min {
		height = min
	}
	return "\x1b[H\x1b[2J" + lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}
