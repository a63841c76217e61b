// ABOUTME: CLI commands for training analytics.
// ABOUTME: Summary stats, weekly volume, bodyweight trend, and per-exercise progress.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
)

var statsWeeks int

const barWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Training analytics",
	Long: `Analytics derived from completed workouts and the bodyweight log.

Volume is weight x reps summed over completed sets of rep-tracked exercises
with a positive weight and rep count. Weeks start on Monday.`,
}

var statsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Workouts, sets, and volume over recent weeks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks := weeksOr(4)
		snap := st.Snapshot()
		stats := analytics.ComputeSummaryStats(snap.History, weeks, st.Now())

		accent.Printf("Last %d weeks\n", weeks)
		fmt.Printf("  Workouts:      %d\n", stats.WorkoutsCompleted)
		fmt.Printf("  Sets:          %d\n", stats.TotalSetsCompleted)
		fmt.Printf("  Volume:        %s %s\n", formatNumber(stats.TotalVolume), snap.Settings.Units)
		fmt.Printf("  Per week:      %.1f\n", stats.AvgWorkoutsPerWeek)
		return nil
	},
}

var statsVolumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Weekly volume trend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.Snapshot()
		trend := analytics.ComputeWeeklyVolumeTrend(snap.History, weeksOr(8), st.Now())
		if len(trend) == 0 {
			fmt.Println("No volume logged in that period.")
			return nil
		}

		peak := 0.0
		for _, w := range trend {
			peak = max(peak, w.Volume)
		}
		for _, w := range trend {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(w.WeekStartISO),
				accent.Sprint(bar(w.Volume, peak)),
				formatNumber(w.Volume),
				snap.Settings.Units)
		}
		return nil
	},
}

var statsBodyweightCmd = &cobra.Command{
	Use:   "bodyweight",
	Short: "Bodyweight trend",
	Long: `Bodyweight entries in date order. Use --weeks 0 for every entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks := statsWeeks
		if weeks < 0 {
			weeks = 12
		}
		snap := st.Snapshot()
		points := analytics.ComputeBodyweightTrend(snap.Bodyweight, weeks, st.Now())
		if len(points) == 0 {
			fmt.Println("No bodyweight entries in that period.")
			return nil
		}

		first := points[0].Weight
		for _, p := range points {
			delta := p.Weight - first
			sign := "+"
			if delta < 0 {
				sign = ""
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(p.DateISO),
				padRight(formatNumber(p.Weight), 8),
				faint.Sprintf("%s%.1f", sign, delta))
		}
		return nil
	},
}

var statsExerciseCmd = &cobra.Command{
	Use:   "exercise <name>",
	Short: "Top set weight per day for one exercise",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		snap := st.Snapshot()
		points := analytics.ComputeExercisePerformance(snap.History, name)
		if len(points) == 0 {
			fmt.Printf("No completed sets for %s.\n", name)
			return nil
		}

		peak := 0.0
		for _, p := range points {
			peak = max(peak, p.TopSetWeight)
		}
		for _, p := range points {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(p.DateISO),
				accent.Sprint(bar(p.TopSetWeight, peak)),
				formatNumber(p.TopSetWeight),
				snap.Settings.Units)
		}
		return nil
	},
}

var statsExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List exercises with logged history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := analytics.UniqueExerciseNames(st.Snapshot().History)
		if len(names) == 0 {
			fmt.Println("No exercises logged yet.")
			return nil
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

// weeksOr returns --weeks, or def when the flag was not given.
func weeksOr(def int) int {
	if statsWeeks <= 0 {
		return def
	}
	return statsWeeks
}

func bar(v, peak float64) string {
	if peak <= 0 {
		return ""
	}
	n := min(int(v/peak*barWidth), barWidth)
	return strings.Repeat("█", n) + strings.Repeat(" ", barWidth-n)
}

func init() {
	statsCmd.PersistentFlags().IntVarP(&statsWeeks, "weeks", "w", -1, "number of recent weeks")

	statsCmd.AddCommand(statsSummaryCmd)
	statsCmd.AddCommand(statsVolumeCmd)
	statsCmd.AddCommand(statsBodyweightCmd)
	statsCmd.AddCommand(statsExerciseCmd)
	statsCmd.AddCommand(statsExercisesCmd)
	rootCmd.AddCommand(statsCmd)
}
