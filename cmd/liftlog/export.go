// ABOUTME: CLI commands for exporting and importing liftlog data.
// ABOUTME: Supports CSV, Parquet, JSON, YAML, and Markdown exports and JSON import.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/export"
	"github.com/CiaoGab/LIFTLOG/internal/models"
	"github.com/CiaoGab/LIFTLOG/internal/store"
)

var (
	exportOutput string
	exportSince  string
	exportUntil  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export workout data",
	Long: `Export workout data in various formats.

FORMATS:

  csv        workouts.csv, exercises.csv, and sets.csv in a directory
  parquet    One row per set, for notebooks and data tools
  json       Full JSON backup (suitable for backup/restore)
  yaml       YAML summary (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Output directory (csv) or file (others; default stdout)
  --since        Only include workouts on or after this date (YYYY-MM-DD)
  --until        Only include workouts on or before this date (YYYY-MM-DD)

EXAMPLES:

  liftlog export csv -o ./export                # Three CSV files
  liftlog export csv --since 2025-01-01         # This year only
  liftlog export parquet -o sets.parquet
  liftlog export json -o backup.json            # Full backup
  liftlog export markdown --since 2025-03-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "parquet", "json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		snap := st.Snapshot()

		since, err := optionalDate(exportSince)
		if err != nil {
			return err
		}
		until, err := optionalDate(exportUntil)
		if err != nil {
			return err
		}
		history := export.FilterByDateRange(snap.History, since, until)

		var data []byte
		switch format {
		case "csv":
			return exportCSV(history)
		case "parquet":
			if exportOutput == "" {
				return fmt.Errorf("parquet export needs --output")
			}
			data, err = export.SetsParquet(history)
		case "json":
			data, err = export.NewBackup(history, snap.Templates, snap.Bodyweight, snap.Settings).JSON()
		case "yaml":
			data, err = export.NewBackup(history, snap.Templates, snap.Bodyweight, snap.Settings).YAML()
		case "markdown":
			data = []byte(export.Markdown(history, since, snap.Settings.Units))
		default:
			return fmt.Errorf("unknown format: %s (use csv, parquet, json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

func exportCSV(history []models.WorkoutSession) error {
	bundle, err := export.All(history)
	if errors.Is(err, export.ErrNothingToExport) {
		fmt.Println("No completed workouts to export.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	dir := exportOutput
	if dir == "" {
		dir = "."
	}
	paths, err := bundle.WriteDir(dir)
	if err != nil {
		return err
	}
	color.Green("✓ Exported %d workouts", len(history))
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workout data from a JSON backup",
	Long: `Import workouts, templates, and bodyweight entries from a JSON backup.

Records whose ID already exists are skipped, so importing the same backup
twice is harmless. Settings and the active workout are not changed.

EXAMPLES:

  liftlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		backup, err := export.ParseBackup(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		sum := st.Merge(store.State{
			History:    backup.History,
			Templates:  backup.Templates,
			Bodyweight: backup.Bodyweight,
		})

		color.Green("✓ Imported from %s", filename)
		fmt.Printf("  Workouts:   %d\n", sum.Workouts)
		fmt.Printf("  Templates:  %d\n", sum.Templates)
		fmt.Printf("  Bodyweight: %d\n", sum.Bodyweight)
		return nil
	},
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", s)
	}
	return &t, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file or directory (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include workouts since date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportUntil, "until", "", "only include workouts until date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
