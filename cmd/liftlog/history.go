// ABOUTME: CLI commands for completed workouts.
// ABOUTME: Supports list, show, delete, and duplicate subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/duration"
)

var (
	historyLimit   int
	duplicateForce bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Browse completed workouts",
	Long: `Completed workouts, most recent first.

Finished workouts cannot be edited. You can delete them, or duplicate one into
a new active workout with the same exercises and all sets reset.

The ID is an 8-character prefix you can use with show, delete, and duplicate.`,
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List completed workouts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.Snapshot()
		if len(snap.History) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		for i := range snap.History {
			if historyLimit > 0 && i >= historyLimit {
				break
			}
			w := &snap.History[i]
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(w.StartTime.Local().Format("2006-01-02 15:04")),
				padRight(truncate(w.Name, 24), 24),
				padRight(duration.FormatSeconds(int(w.Duration().Seconds())), 8),
				faint.Sprintf("%d sets, %s %s", w.CompletedSets(), formatNumber(w.Volume()), snap.Settings.Units))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a completed workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.Snapshot()
		w, err := resolveHistory(snap.History, args[0])
		if err != nil {
			return err
		}
		printSession(w, snap.Settings.Units)
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a completed workout",
	Long: `Delete a completed workout by its ID or ID prefix.

CAUTION:

  This permanently deletes the workout. There is no undo.
  If the prefix matches multiple workouts, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := resolveHistory(st.Snapshot().History, args[0])
		if err != nil {
			return err
		}
		st.DeleteHistoryItem(w.ID)
		color.Yellow("✗ Deleted %s", w.Name)
		fmt.Printf("  %s %s\n", faint.Sprint(shortID(w.ID)), dateOf(w.StartTime))
		return nil
	},
}

var historyDuplicateCmd = &cobra.Command{
	Use:     "duplicate <id>",
	Aliases: []string{"again"},
	Short:   "Start a new workout from a completed one",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.Snapshot()
		if snap.ActiveSession != nil && !duplicateForce {
			return fmt.Errorf("workout %q already in progress (finish or cancel it, or use --force)", snap.ActiveSession.Name)
		}
		w, err := resolveHistory(snap.History, args[0])
		if err != nil {
			return err
		}
		id, err := st.DuplicateWorkout(w.ID)
		if err != nil {
			return fmt.Errorf("failed to duplicate workout: %w", err)
		}
		color.Green("✓ Started %s", w.Name)
		fmt.Printf("  ID: %s\n", shortID(id))
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results (0 for all)")
	historyDuplicateCmd.Flags().BoolVarP(&duplicateForce, "force", "f", false, "replace an active workout")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyDuplicateCmd)
	rootCmd.AddCommand(historyCmd)
}
