package config

import "time"

// Window and notification durations.
const (
	// WindowDays is the number of calendar days shown per view window.
	WindowDays = 14

	// ToastDuration is how long a transient notice stays on screen.
	ToastDuration = 3 * time.Second
)

// Storage keys. These form the persistence contract and must not change
// between releases.
const (
	KeyHabits      = "habits"
	KeyCompletions = "completions"
	KeyUseAsNewTab = "useAsNewTab"
)

// Export envelope settings.
const (
	EnvelopeVersion  = 1
	ExportFilePrefix = "habits_export_"
	ReportFilePrefix = "habit_report_"
	ExportDateLayout = "2006-01-02"
)

// Database/application settings.
const (
	AppName        = "habt"
	DBFileName     = "habits.db"
	LogFileName    = "habt.log"
	ConfigFileName = "config.yaml"
)
