package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/util"
)

// gridLead marks the focused habit row. All rows reserve its width so the
// grid columns stay aligned.
const gridLead = "> "

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("H") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Render("A") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Render("B") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Render("T")
}

func (m DashboardModel) renderHeader() string {
	title := fmt.Sprintf("%s v%s  |  %s", renderLogo(), versionLabel(), m.window.RangeLabel())
	if m.useAsNewTab {
		title += "  |  new tab"
	}

	headerFrame := Frames.Header.BorderForeground(m.theme.Border)
	headerExtra := lipgloss.Width(headerFrame.Render(""))
	headerWidth := m.width - headerExtra
	if headerWidth < 1 {
		headerWidth = 1
	}
	return headerFrame.Width(headerWidth).Render(m.theme.Header.Render(title))
}

// nameColumnWidth picks the habit name column width for the current
// terminal size. Narrow terminals shrink the column toward the minimum so
// the day cells keep their alignment instead of wrapping.
func (m DashboardModel) nameColumnWidth() int {
	width := config.TargetNameColumnWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		width = m.width - config.WindowDays*config.CellWidth - ansi.StringWidth(gridLead)
	}
	return util.Clamp(width, config.MinNameColumnWidth, config.TargetNameColumnWidth)
}

func (m DashboardModel) renderGrid() string {
	dates := m.window.VisibleDates()
	nameWidth := m.nameColumnWidth()
	gutter := strings.Repeat(" ", ansi.StringWidth(gridLead)+nameWidth)

	var b strings.Builder

	// Two label rows above the grid: weekday, then day of month.
	b.WriteString(gutter)
	for _, d := range dates {
		b.WriteString(m.dayLabelStyle(d).Render(padCell(util.WeekdayLabel(d))))
	}
	b.WriteString("\n")
	b.WriteString(gutter)
	for _, d := range dates {
		b.WriteString(m.dayLabelStyle(d).Render(padCell(fmt.Sprintf("%02d", d.Day()))))
	}

	for row, h := range m.habits {
		focusedRow := row == m.focusRow
		lead := strings.Repeat(" ", ansi.StringWidth(gridLead))
		nameStyle := m.theme.HabitName
		if focusedRow {
			lead = gridLead
			nameStyle = m.theme.Focused
		}
		b.WriteString("\n")
		b.WriteString(nameStyle.Render(lead + padRight(truncateLabel(h.Name, nameWidth), nameWidth)))

		days := m.completions[h.ID]
		for col, d := range dates {
			b.WriteString(m.renderCell(days[util.DateKey(d)], focusedRow && col == m.focusCol))
		}
	}
	return b.String()
}

func (m DashboardModel) renderCell(state models.State, focused bool) string {
	var mark string
	var style lipgloss.Style
	switch state {
	case models.StateDone:
		mark, style = "✓", m.theme.Done
	case models.StateSkipped:
		mark, style = "○", m.theme.Skipped
	default:
		mark, style = "·", m.theme.Untracked
	}
	if focused {
		return m.theme.Focused.Render("["+mark+"]") + " "
	}
	return " " + style.Render(mark) + "  "
}

func (m DashboardModel) dayLabelStyle(d time.Time) lipgloss.Style {
	if util.SameDay(d, m.today) {
		return m.theme.Today
	}
	return m.theme.DayLabel
}

func (m DashboardModel) renderStreakLine() string {
	h, ok := m.focusedHabit()
	if !ok {
		return ""
	}
	st := m.store.Streaks(h.ID)
	line := fmt.Sprintf("%s: current streak %d, longest %d", h.Name, st.Current, st.Longest)
	return m.theme.Streak.Render(truncateLabel(line, m.width))
}

func (m DashboardModel) renderFooter() string {
	var footerContent string
	var rawHelp string
	centered := false

	switch {
	case m.toast != "":
		style := m.theme.Toast
		if m.toastIsErr {
			style = m.theme.ToastErr
		}
		footerContent = style.Render(m.toast)
		centered = true
	case m.modalIs(ModalHabitAdd):
		footerContent = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Dim.Render("New habit"),
			m.theme.Input.Render(m.inputs.nameInput.View()))
	case m.modalIs(ModalHabitRename):
		footerContent = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Dim.Render("Rename habit"),
			m.theme.Input.Render(m.inputs.nameInput.View()))
	case m.modalIs(ModalConfirm):
		state := m.modal.(*ConfirmState)
		footerContent = m.theme.Focused.Render(state.Pending.Label() + " [y] Confirm | [Esc] Cancel")
		centered = true
	case m.modalIs(ModalImportPath):
		footerContent = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Dim.Render("Import from file"),
			m.theme.Input.Render(m.inputs.pathInput.View()))
	case m.modalIs(ModalImportPass):
		state := m.modal.(*ImportPassState)
		lines := []string{m.theme.Dim.Render("File is encrypted. Enter passphrase:")}
		if state.Message != "" {
			lines = append(lines, m.theme.ToastErr.Render(state.Message))
		}
		lines = append(lines, m.theme.Focused.Render("> ")+m.inputs.passInput.View())
		footerContent = lipgloss.JoinVertical(lipgloss.Left, lines...)
	case m.modalIs(ModalTheme):
		footerContent = m.theme.Dim.Render("[Enter] Apply Theme | [Esc] Cancel")
	default:
		rawHelp = "[a]Add|[r]Rename|[d]Delete|[space]Toggle|[K/J]Reorder|[[/]]Page|[t]Today|[e]Export|[i]Import|[p]Report|[n]NewTab|[T]Theme|[q]Quit"
		footerContent = m.theme.Dim.Render(rawHelp)
	}

	boxed := Frames.Footer.BorderForeground(m.theme.Border)
	innerWidth := m.width - lipgloss.Width(boxed.Render(""))
	if innerWidth < 1 {
		innerWidth = 1
	}
	content := footerContent
	if centered {
		content = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, footerContent)
	} else if rawHelp != "" {
		content = m.wrapHelpTokens(rawHelp, innerWidth)
	}
	return boxed.Width(innerWidth).Render(content)
}

// wrapHelpTokens lays the "|"-separated help entries out over as few lines
// as the footer width allows, balancing line lengths so the last line is
// not left holding a single orphan token.
func (m DashboardModel) wrapHelpTokens(raw string, innerWidth int) string {
	const sep = " | "
	sepWidth := ansi.StringWidth(sep)

	var tokens []string
	var widths []int
	sumWidths := 0
	for _, token := range strings.Split(raw, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
		w := ansi.StringWidth(token)
		widths = append(widths, w)
		sumWidths += w
	}
	if len(tokens) == 0 {
		return ""
	}

	totalWidth := sumWidths + sepWidth*(len(tokens)-1)
	linesTarget := int(math.Ceil(float64(totalWidth) / float64(innerWidth)))
	if linesTarget < 1 {
		linesTarget = 1
	}

	var lines []string
	var currentTokens []string
	currentWidth := 0
	sumRemaining := sumWidths
	tokensRemaining := len(tokens)
	linesRemaining := linesTarget
	for i, token := range tokens {
		tokenWidth := widths[i]
		remainingTotal := sumRemaining + sepWidth*(tokensRemaining-1)
		idealMax := int(math.Ceil(float64(remainingTotal) / float64(linesRemaining)))
		if idealMax > innerWidth {
			idealMax = innerWidth
		}
		if currentWidth == 0 {
			currentTokens = append(currentTokens, token)
			currentWidth = tokenWidth
		} else {
			candidateWidth := currentWidth + sepWidth + tokenWidth
			if candidateWidth <= idealMax || linesRemaining == 1 {
				currentTokens = append(currentTokens, token)
				currentWidth = candidateWidth
			} else {
				lines = append(lines, strings.Join(currentTokens, sep))
				linesRemaining--
				currentTokens = []string{token}
				currentWidth = tokenWidth
			}
		}
		sumRemaining -= tokenWidth
		tokensRemaining--
	}
	if len(currentTokens) > 0 {
		lines = append(lines, strings.Join(currentTokens, sep))
	}

	var rendered []string
	for _, line := range lines {
		rendered = append(rendered, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, m.theme.Dim.Render(line)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func padCell(s string) string {
	return padRight(s, config.CellWidth)
}

func padRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func truncateLabel(label string, width int) string {
	if width < 1 || ansi.StringWidth(label) <= width {
		return label
	}
	return ansi.Truncate(label, width, config.TruncationSuffix)
}
