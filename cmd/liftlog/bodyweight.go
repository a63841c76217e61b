// ABOUTME: CLI commands for the bodyweight log.
// ABOUTME: Supports add, list, update, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
	"github.com/CiaoGab/LIFTLOG/internal/models"
)

var (
	bwDate   string
	bwUnit   string
	bwNote   string
	bwWeight string
	bwLimit  int
)

var bodyweightCmd = &cobra.Command{
	Use:     "bodyweight",
	Aliases: []string{"bw"},
	Short:   "Track bodyweight",
	Long: `Log bodyweight by calendar date, independent of workouts.

Examples:
  liftlog bodyweight add 82.4
  liftlog bodyweight add 181.5 --unit lb --date 2025-03-01 --note "after travel"
  liftlog bodyweight list
  liftlog stats bodyweight --weeks 8`,
}

var bodyweightAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Record a bodyweight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := parseBodyweight(args[0])
		if err != nil {
			return err
		}

		date := analytics.DateISO(st.Now())
		if bwDate != "" {
			if date, err = parseDate(bwDate); err != nil {
				return err
			}
		}
		unit, err := parseUnits(bwUnit)
		if err != nil {
			return err
		}

		id := st.AddBodyWeightEntry(models.BodyWeightEntry{
			DateISO: date,
			Weight:  weight,
			Unit:    unit,
			Note:    bwNote,
		})
		if unit == "" {
			unit = st.Snapshot().Settings.Units
		}

		color.Green("✓ Logged bodyweight")
		fmt.Printf("  %s %s %s %s\n", faint.Sprint(shortID(id)), date, formatNumber(weight), unit)
		return nil
	},
}

var bodyweightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bodyweight entries",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := st.Snapshot().Bodyweight
		if len(entries) == 0 {
			fmt.Println("No bodyweight entries found.")
			return nil
		}

		for i, e := range entries {
			if bwLimit > 0 && i >= bwLimit {
				break
			}
			note := ""
			if e.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(e.Note, 30))
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(shortID(e.ID)),
				e.DateISO,
				padRight(formatNumber(e.Weight), 7),
				e.Unit,
				note)
		}
		return nil
	},
}

var bodyweightUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a bodyweight entry",
	Long: `Edit a bodyweight entry. Only the flags you pass are changed.

Examples:
  liftlog bodyweight update 3f2a --weight 82.1
  liftlog bodyweight update 3f2a --date 2025-03-02 --note ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolveBodyweight(st.Snapshot().Bodyweight, args[0])
		if err != nil {
			return err
		}

		var u models.BodyWeightUpdate
		if bwWeight != "" {
			w, err := parseBodyweight(bwWeight)
			if err != nil {
				return err
			}
			u.Weight = &w
		}
		if bwDate != "" {
			d, err := parseDate(bwDate)
			if err != nil {
				return err
			}
			u.DateISO = &d
		}
		if bwUnit != "" {
			unit, err := parseUnits(bwUnit)
			if err != nil {
				return err
			}
			u.Unit = &unit
		}
		if cmd.Flags().Changed("note") {
			u.Note = &bwNote
		}

		st.UpdateBodyWeightEntry(e.ID, u)
		color.Green("✓ Updated bodyweight entry %s", shortID(e.ID))
		return nil
	},
}

var bodyweightDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a bodyweight entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolveBodyweight(st.Snapshot().Bodyweight, args[0])
		if err != nil {
			return err
		}
		st.DeleteBodyWeightEntry(e.ID)
		color.Yellow("✗ Deleted bodyweight entry")
		fmt.Printf("  %s %s %s %s\n", faint.Sprint(shortID(e.ID)), e.DateISO, formatNumber(e.Weight), e.Unit)
		return nil
	},
}

func parseBodyweight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w <= 0 {
		return 0, fmt.Errorf("invalid weight: %s", s)
	}
	return w, nil
}

// parseUnits accepts "", kg, or lb. An empty unit defers to settings.
func parseUnits(s string) (models.Units, error) {
	switch models.Units(s) {
	case "", models.UnitsKg, models.UnitsLb:
		return models.Units(s), nil
	default:
		return "", fmt.Errorf("unknown unit: %s (use kg or lb)", s)
	}
}

func init() {
	bodyweightAddCmd.Flags().StringVar(&bwDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	bodyweightAddCmd.Flags().StringVar(&bwUnit, "unit", "", "kg or lb, defaults to settings")
	bodyweightAddCmd.Flags().StringVar(&bwNote, "note", "", "optional note")

	bodyweightListCmd.Flags().IntVarP(&bwLimit, "limit", "n", 30, "max number of results (0 for all)")

	bodyweightUpdateCmd.Flags().StringVar(&bwWeight, "weight", "", "new weight")
	bodyweightUpdateCmd.Flags().StringVar(&bwDate, "date", "", "new date (YYYY-MM-DD)")
	bodyweightUpdateCmd.Flags().StringVar(&bwUnit, "unit", "", "new unit")
	bodyweightUpdateCmd.Flags().StringVar(&bwNote, "note", "", "new note")

	bodyweightCmd.AddCommand(bodyweightAddCmd)
	bodyweightCmd.AddCommand(bodyweightListCmd)
	bodyweightCmd.AddCommand(bodyweightUpdateCmd)
	bodyweightCmd.AddCommand(bodyweightDeleteCmd)
	rootCmd.AddCommand(bodyweightCmd)
}
