package config

// Layout constants.
const (
	// CellWidth is the width of one day cell in the grid, separator included.
	CellWidth = 4

	// MinNameColumnWidth is the minimum width of the habit name column.
	MinNameColumnWidth = 10

	// TargetNameColumnWidth is the preferred width of the habit name column.
	TargetNameColumnWidth = 24

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 80

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxNameLength is the maximum habit name length.
	MaxNameLength = 100

	// MaxPathLength is the maximum file path length in import/export inputs.
	MaxPathLength = 255
)
