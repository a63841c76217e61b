// ABOUTME: Root Cobra command for the liftlog CLI.
// ABOUTME: Opens config, logging, storage, and the store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/config"
	"github.com/CiaoGab/LIFTLOG/internal/logging"
	"github.com/CiaoGab/LIFTLOG/internal/models"
	"github.com/CiaoGab/LIFTLOG/internal/storage"
	"github.com/CiaoGab/LIFTLOG/internal/store"
)

var (
	cfg  *config.Config
	repo storage.Repository
	st   *store.Store
	log  *logrus.Logger

	flagBackend  string
	flagDataDir  string
	flagLogLevel string

	// accent follows the stored theme.
	accent = color.New(color.FgCyan, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Personal strength training log",
	Long: `Liftlog is a CLI tool for logging strength and conditioning workouts.

QUICK START:

  $ liftlog template list                     # See built-in templates
  $ liftlog workout start upper-a             # Start from a template
  $ liftlog workout set 1 1 --weight 60 --reps 8 --done
  $ liftlog workout show                      # Review the session
  $ liftlog workout finish                    # Save it to history

EMPTY WORKOUTS:

  $ liftlog workout start
  $ liftlog workout add-exercise "Bench Press" --muscle Chest
  $ liftlog workout log bench --weight 100 --reps 5

ANALYTICS:

  $ liftlog records                           # Personal records
  $ liftlog stats summary --weeks 4           # Workouts, sets, volume
  $ liftlog stats volume                      # Weekly volume trend
  $ liftlog stats exercise "Bench Press"      # Top set per day

EXPORT:

  $ liftlog export csv -o ./export            # workouts/exercises/sets CSV
  $ liftlog export json -o backup.json        # Full backup (importable)

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server.

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  State is stored at ~/.local/share/liftlog (SQLite by default).
  Configure the backend in ~/.config/liftlog/config.json or with LIFTLOG_BACKEND.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// Execute runs the root command. PersistentPostRunE is skipped when a
// command fails, so the store is closed here as well.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	return err
}

func openStore() error {
	if err := closeStore(); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	log = logging.Setup(logging.Params{
		Level: cfg.GetLogLevel(),
		File:  cfg.GetLogFile(),
	})

	repo, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	log.WithFields(logrus.Fields{
		"backend":  cfg.GetBackend(),
		"data_dir": cfg.GetDataDir(),
	}).Debug("storage opened")

	st, err = store.Load(repo, store.WithLogger(log), store.WithThemeHook(applyTheme))
	if err != nil {
		_ = repo.Close()
		repo = nil
		return fmt.Errorf("failed to load state: %w", err)
	}
	return nil
}

func closeStore() error {
	st = nil
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo = nil
	return err
}

func applyTheme(theme models.Theme) {
	if theme == models.ThemeLight {
		accent = color.New(color.FgBlue, color.Bold)
		return
	}
	accent = color.New(color.FgCyan, color.Bold)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, badger, json")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}
