// Package report renders a printable PDF snapshot of the habit grid.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/models"
	"github.com/akyairhashvil/HABT/internal/util"
)

const (
	nameColWidth  = 58
	dayColWidth   = 9
	gridRowHeight = 7
	maxNameChars  = 28
)

// Generate writes the visible window grid plus a streak summary to a PDF
// under dir, named after the report date, and returns the written path.
// Dates must be oldest first.
func Generate(habits []models.Habit, completions models.CompletionMap, dates []time.Time, label string, now time.Time, dir string) (string, error) {
	name := fmt.Sprintf("%s%s.pdf", config.ReportFilePrefix, now.Format(config.ExportDateLayout))
	path := filepath.Join(dir, name)
	if err := GenerateTo(path, habits, completions, dates, label, now); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateTo renders the report to an explicit file path, creating parent
// directories as needed.
func GenerateTo(path string, habits []models.Habit, completions models.CompletionMap, dates []time.Time, label string, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Habit Report: %s", label))
	pdf.Ln(12)

	// Day-of-month header row.
	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(nameColWidth, gridRowHeight, "")
	for _, d := range dates {
		pdf.CellFormat(dayColWidth, gridRowHeight, fmt.Sprintf("%d", d.Day()), "", 0, "C", false, 0, "")
	}
	pdf.Ln(gridRowHeight)

	pdf.SetFont("Arial", "", 10)
	if len(habits) == 0 {
		pdf.Cell(0, 8, "No habits tracked yet.")
		pdf.Ln(8)
	}
	for _, h := range habits {
		days := completions[h.ID]
		pdf.Cell(nameColWidth, gridRowHeight, truncateName(h.Name))
		for _, d := range dates {
			pdf.CellFormat(dayColWidth, gridRowHeight, mark(days[util.DateKey(d)]), "", 0, "C", false, 0, "")
		}
		pdf.Ln(gridRowHeight)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Streaks")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	totalDone := 0
	for _, h := range habits {
		days := completions[h.ID]
		done := 0
		for _, state := range days {
			if state == models.StateDone {
				done++
			}
		}
		totalDone += done
		st := habit.CalcStreaks(days, now)
		line := fmt.Sprintf("%s: current %d, longest %d, %d days done", h.Name, st.Current, st.Longest, done)
		pdf.MultiCell(0, 8, line, "", "", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total Days Completed: %d", totalDone))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

func mark(s models.State) string {
	switch s {
	case models.StateDone:
		return "x"
	case models.StateSkipped:
		return "s"
	default:
		return "-"
	}
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameChars {
		return name
	}
	return string(runes[:maxNameChars-3]) + "..."
}
