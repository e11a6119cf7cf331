package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/storage"
)

var newtabCmd = &cobra.Command{
	Use:   "newtab [on|off|status]",
	Short: "Control the persisted new-tab preference",
	Long: `Toggles the stored new-tab flag. Launcher integrations read the
flag to decide whether a fresh terminal tab should open straight into the
habit dashboard. With no argument the current state is printed.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off", "status"},
	RunE:      runNewtab,
}

func init() {
	rootCmd.AddCommand(newtabCmd)
}

func runNewtab(cmd *cobra.Command, args []string) error {
	mode := "status"
	if len(args) > 0 {
		mode = args[0]
	}

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

	switch mode {
	case "on":
		store.SetUseAsNewTab(true)
		fmt.Println("New tab mode enabled.")
	case "off":
		store.SetUseAsNewTab(false)
		fmt.Println("New tab mode disabled.")
	case "status":
		if store.UseAsNewTab() {
			fmt.Println("New tab mode is on.")
		} else {
			fmt.Println("New tab mode is off.")
		}
	default:
		return fmt.Errorf("unknown mode %q (want on, off, or status)", mode)
	}
	return nil
}
