package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/storage"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace all habit data with the contents of an export file",
	Long: `Reads an export file, shows what would be replaced, and asks for
confirmation before touching the database. Encrypted exports prompt for
their passphrase.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := habit.ReadExportFile(args[0])
	if err != nil {
		return err
	}

	env, err := habit.DecodeImport(data, "")
	if errors.Is(err, habit.ErrPassphraseNeeded) {
		var pass string
		if pass, err = promptPassphrase("Enter passphrase: "); err != nil {
			return err
		}
		env, err = habit.DecodeImport(data, pass)
	}
	if err != nil {
		return err
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

	pending := store.RequestImport(env)
	if !importYes {
		ok, err := confirmOnTerminal(pending.Label())
		if err != nil {
			return err
		}
		if !ok {
			pending.Cancel()
			fmt.Println("Import cancelled.")
			return nil
		}
	}
	pending.Confirm()
	fmt.Printf("Imported %d habits.\n", len(store.Habits()))
	return nil
}
