// ABOUTME: CLI command for personal records.
// ABOUTME: Shows the heaviest completed set per exercise.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
)

var recordsCmd = &cobra.Command{
	Use:     "records",
	Aliases: []string{"prs", "pr"},
	Short:   "Show personal records",
	Long: `Show the heaviest completed set for every exercise.

Exercises are grouped by name regardless of case. Timed exercises and sets
without a positive weight and rep count are ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		units := st.Snapshot().Settings.Units
		records := analytics.SortedRecords(st.PersonalRecords())
		if len(records) == 0 {
			fmt.Println("No records yet.")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s %s %s\n",
				padRight(truncate(r.Exercise, 40), 40),
				accent.Sprintf("%s %s x %s", formatNumber(r.Weight), units, formatNumber(r.Reps)),
				faint.Sprint(dateOf(r.Date)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
