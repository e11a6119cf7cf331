package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/report"
	"github.com/akyairhashvil/HABT/internal/storage"
	"github.com/akyairhashvil/HABT/internal/util"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Generate a PDF report of the last two weeks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := storage.Open(ctx, cfg.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	store := habit.NewStore(db, logger)
	defer store.Close()
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	window := habit.NewWindow(nil)
	now := time.Now()

	var path string
	if len(args) > 0 {
		path = args[0]
		err = report.GenerateTo(path, store.Habits(), store.Completions(),
			window.VisibleDates(), window.RangeLabel(), now)
	} else {
		path, err = report.Generate(store.Habits(), store.Completions(),
			window.VisibleDates(), window.RangeLabel(), now, util.ReportsDir(config.AppName))
	}
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", path)
	return nil
}
