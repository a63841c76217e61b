// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies the state from the configured backend to another one.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/config"
	"github.com/CiaoGab/LIFTLOG/internal/storage"
)

var (
	migrateTo    string
	migrateToDir string
	migrateForce bool
	migrateSave  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move data to another storage backend",
	Long: `Copy all liftlog data from the current backend to another one.

BACKENDS:

  sqlite   Single SQLite file (default)
  badger   Badger key/value directory
  json     Plain state.json file, easy to inspect or sync with other tools

IMPORTANT:

  - The destination must be empty unless you pass --force
  - The source is left untouched
  - Use --save to make the destination the configured backend

USAGE:

  liftlog migrate --to json --to-dir ~/Dropbox/liftlog
  liftlog migrate --to badger --save`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == "" {
			return fmt.Errorf("--to is required (sqlite, badger, or json)")
		}

		dest := &config.Config{
			Backend:  migrateTo,
			DataDir:  migrateToDir,
			LogLevel: cfg.LogLevel,
			LogFile:  cfg.LogFile,
		}
		if dest.DataDir == "" {
			dest.DataDir = cfg.DataDir
		}
		if dest.GetBackend() == cfg.GetBackend() && dest.GetDataDir() == cfg.GetDataDir() {
			return fmt.Errorf("source and destination are the same")
		}

		dst, err := dest.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(repo, dst, migrateForce)
		if errors.Is(err, storage.ErrDestinationNotEmpty) {
			return fmt.Errorf("destination %s at %s already has data (use --force to overwrite)", dest.GetBackend(), dest.GetDataDir())
		}
		if errors.Is(err, storage.ErrSourceEmpty) {
			fmt.Println("Nothing to migrate.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %s → %s", cfg.GetBackend(), dest.GetBackend())
		fmt.Printf("  Workouts:   %d\n", summary.Workouts)
		fmt.Printf("  Templates:  %d\n", summary.Templates)
		fmt.Printf("  Bodyweight: %d\n", summary.Bodyweight)
		if summary.Active {
			fmt.Println("  Active workout included")
		}

		if migrateSave {
			saved, err := config.Load()
			if err != nil {
				return err
			}
			saved.Backend = dest.Backend
			saved.DataDir = dest.DataDir
			if err := saved.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("  Config updated: %s\n", config.GetConfigPath())
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite, badger, json")
	migrateCmd.Flags().StringVar(&migrateToDir, "to-dir", "", "destination data directory (default: current)")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite a non-empty destination")
	migrateCmd.Flags().BoolVar(&migrateSave, "save", false, "make the destination the configured backend")
	rootCmd.AddCommand(migrateCmd)
}
