package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/akyairhashvil/HABT/internal/config"
	"github.com/akyairhashvil/HABT/internal/habit"
	"github.com/akyairhashvil/HABT/internal/logging"
	"github.com/akyairhashvil/HABT/internal/storage"
	"github.com/akyairhashvil/HABT/internal/tui"
)

var (
	// Global flags
	verbose    bool
	dataDir    string
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "habt",
	Version: tui.AppVersion,
	Short:   "Track daily habits on a terminal grid",
	Long: `habt is a terminal habit tracker.

The dashboard shows each habit as a row across a trailing two-week
window; cells cycle through done, skipped, and untracked. Data lives in
a local sqlite database. Run without arguments to open the dashboard;
subcommands cover headless export, import, and reporting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if verbose {
			cfg.Debug = true
		}

		// The dashboard owns the terminal, so its logs go to a file.
		if cmd == cmd.Root() {
			logger, err = logging.NewFile(cfg.LogPath(), cfg.Debug)
		} else {
			logger, err = logging.NewStderr(cfg.Debug)
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("habt %s (commit %s, built %s)\n", tui.AppVersion, tui.GitCommit, tui.BuildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the data directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file path")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
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
	store.Subscribe(func(e habit.Event) {
		logger.Debug("store event",
			zap.Stringer("kind", e.Kind),
			zap.String("habit_id", e.HabitID))
	})

	logger.Info("dashboard starting",
		zap.String("db", db.Path()),
		zap.Int("habits", len(store.Habits())))

	p := tea.NewProgram(tui.NewDashboardModel(store, logger, cfg.Theme))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// promptPassphrase reads a passphrase from the terminal without echo. The
// prompt goes to stderr so piped stdout stays clean.
func promptPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}

// confirmOnTerminal prints label and reads a y/N answer from stdin.
func confirmOnTerminal(label string) (bool, error) {
	fmt.Printf("%s [y/N]: ", label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return answerIsYes(line), nil
}

func answerIsYes(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
