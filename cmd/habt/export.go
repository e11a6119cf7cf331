package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/storage"
	"github.com/akyairhashvil/HABT/internal/util"
)

var exportEncrypt bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all habit data to a JSON export file",
	Long: `Writes every habit and its completion history to a portable JSON
file, by default under the user's documents folder. With --encrypt the
payload is sealed with a passphrase prompted on the terminal and can only
be imported with that passphrase.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportEncrypt, "encrypt", false, "Encrypt the export with a passphrase")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	payload, err := store.Export()
	if err != nil {
		return err
	}

	if exportEncrypt {
		pass, err := promptNewPassphrase()
		if err != nil {
			return err
		}
		if payload, err = habit.EncryptEnvelope(payload, pass); err != nil {
			return err
		}
	}

	path := habit.DefaultExportPath(time.Now())
	if len(args) > 0 {
		path = args[0]
	}
	if err := habit.WriteExportFile(path, payload); err != nil {
		return err
	}
	fmt.Printf("Export written to %s\n", path)
	return nil
}

// promptNewPassphrase asks twice and enforces the minimum strength rules.
func promptNewPassphrase() (string, error) {
	pass, err := promptPassphrase("Passphrase: ")
	if err != nil {
		return "", err
	}
	if err := util.ValidatePassphrase(pass); err != nil {
		return "", err
	}
	confirm, err := promptPassphrase("Confirm passphrase: ")
	if err != nil {
		return "", err
	}
	if confirm != pass {
		return "", fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}
