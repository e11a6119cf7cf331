package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	DayLabel  lipgloss.Style
	Today     lipgloss.Style
	HabitName lipgloss.Style
	Done      lipgloss.Style
	Skipped   lipgloss.Style
	Untracked lipgloss.Style
	Focused   lipgloss.Style
	Streak    lipgloss.Style
	Input     lipgloss.Style
	Toast     lipgloss.Style
	ToastErr  lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		DayLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Today:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		HabitName: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Skipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Untracked: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Streak:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Toast:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		ToastErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                                                   // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		DayLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Today:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		HabitName: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),            // White
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Skipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")),            // Orange
		Untracked: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Streak:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),            // Cyan
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Toast:     lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		ToastErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("141")), // Purple
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// Frames holds reusable framed container styles shared by the views.
var Frames = struct {
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Modal   lipgloss.Style
	Welcome lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Align(lipgloss.Center).Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Footer:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Modal:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Welcome: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
}
