// ABOUTME: CLI commands for the active workout session.
// ABOUTME: Start, log sets, edit exercises, and finish or cancel the session.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/duration"
	"github.com/CiaoGab/LIFTLOG/internal/models"
)

var (
	startForce bool

	exerciseMuscle   string
	exerciseCategory string

	setReps          string
	setWeight        string
	setDuration      string
	setRPE           string
	setDone          bool
	setUndone        bool
	setClearDuration bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage the active workout",
	Long: `Run a workout session from start to finish.

There is at most one active workout. It is saved after every change, so you
can close the terminal and continue later.

WORKFLOW:

  1. Start:        liftlog workout start upper-a
  2. Log sets:     liftlog workout log 1 --weight 60 --reps 8
  3. Review:       liftlog workout show
  4. Finish:       liftlog workout finish

EXERCISES AND SETS:

  Exercises are referenced by position (1, 2, ...), ID prefix, or name prefix.
  Sets are referenced by position within the exercise or by ID prefix.

FINISHING:

  A workout can only be finished once it has at least one completed set.
  Completed sets need reps (or a duration for timed exercises) and weights
  cannot be negative.`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start [template]",
	Short: "Start a workout",
	Long: `Start a workout from a template, or an empty workout.

The template can be given by ID, ID prefix, or name.

Examples:
  liftlog workout start                 # empty workout
  liftlog workout start upper-a
  liftlog workout start "Lower B"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.Snapshot()
		if snap.ActiveSession != nil && !startForce {
			return fmt.Errorf("workout %q already in progress (finish or cancel it, or use --force)", snap.ActiveSession.Name)
		}

		templateID := ""
		if len(args) == 1 {
			t, err := resolveTemplate(snap.Templates, args[0])
			if err != nil {
				return err
			}
			templateID = t.ID
		}

		id, err := st.StartWorkout(templateID)
		if err != nil {
			return fmt.Errorf("failed to start workout: %w", err)
		}

		active := st.Snapshot().ActiveSession
		color.Green("✓ Started %s", active.Name)
		fmt.Printf("  ID: %s\n", shortID(id))
		if n := len(active.Exercises); n > 0 {
			fmt.Printf("  %d exercises\n", n)
		}
		return nil
	},
}

var workoutFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the active workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}
		if err := st.FinishWorkout(); err != nil {
			return fmt.Errorf("cannot finish workout: %w", err)
		}

		snap := st.Snapshot()
		w := &snap.History[0]
		color.Green("✓ Finished %s", w.Name)
		fmt.Printf("  Duration: %s\n", duration.FormatSeconds(int(w.Duration().Seconds())))
		fmt.Printf("  Sets: %d\n", w.CompletedSets())
		fmt.Printf("  Volume: %s %s\n", formatNumber(w.Volume()), snap.Settings.Units)
		return nil
	},
}

var workoutCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the active workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := activeSession()
		if err != nil {
			return err
		}
		st.CancelWorkout()
		color.Yellow("✗ Discarded %s", active.Name)
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := activeSession()
		if err != nil {
			return err
		}
		printSession(active, st.Snapshot().Settings.Units)
		return nil
	},
}

var workoutAddExerciseCmd = &cobra.Command{
	Use:   "add-exercise <name>",
	Short: "Add an exercise to the active workout",
	Long: `Add an exercise with one blank set.

Cardio exercises (--category cardio) are tracked by time instead of reps.

Examples:
  liftlog workout add-exercise "Bench Press" --muscle Chest
  liftlog workout add-exercise Elliptical --category cardio`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("exercise name is required")
		}
		id := st.AddExercise(name, exerciseMuscle, strings.ToLower(exerciseCategory))
		color.Green("✓ Added %s", name)
		fmt.Printf("  ID: %s\n", shortID(id))
		return nil
	},
}

var workoutRemoveExerciseCmd = &cobra.Command{
	Use:     "remove-exercise <exercise>",
	Aliases: []string{"rm-exercise"},
	Short:   "Remove an exercise from the active workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		st.RemoveExercise(ex.ID)
		color.Yellow("✗ Removed %s", ex.Name)
		return nil
	},
}

var workoutModeCmd = &cobra.Command{
	Use:   "mode <exercise>",
	Short: "Toggle an exercise between reps and time tracking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		st.ToggleTrackingMode(ex.ID)
		color.Green("✓ %s now tracks %s", ex.Name, ex.TrackingMode.Toggle())
		return nil
	},
}

var workoutAddSetCmd = &cobra.Command{
	Use:   "add-set <exercise>",
	Short: "Append a blank set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		st.AddSet(ex.ID)
		color.Green("✓ Added set %d to %s", len(ex.Sets)+1, ex.Name)
		return nil
	},
}

var workoutCopySetCmd = &cobra.Command{
	Use:   "copy-set <exercise>",
	Short: "Append a copy of the last set",
	Long: `Append a set with the previous set's weight, reps, and duration.

The new set is not marked completed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		st.CopyLastSet(ex.ID)
		color.Green("✓ Copied set %d of %s", len(ex.Sets)+1, ex.Name)
		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <exercise> <set>",
	Short: "Edit a set",
	Long: `Edit a set in the active workout. Only the flags you pass are changed.

Examples:
  liftlog workout set 1 2 --weight 62.5 --reps 8 --done
  liftlog workout set elliptical 1 --duration 20:00 --done
  liftlog workout set bench 3 --undone`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		set, err := resolveSet(ex, args[1])
		if err != nil {
			return err
		}
		update, err := setUpdateFromFlags()
		if err != nil {
			return err
		}
		st.UpdateSet(ex.ID, set.ID, update)
		color.Green("✓ Updated %s set", ex.Name)
		return nil
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <exercise>",
	Short: "Log a completed set",
	Long: `Fill the next open set of an exercise and mark it completed.

An open set is one without a weight or duration yet. When there is none, a new
set is appended.

Examples:
  liftlog workout log bench --weight 100 --reps 5
  liftlog workout log 2 --weight 40 --reps 12 --rpe 8
  liftlog workout log elliptical --duration 25:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		setDone = !setUndone
		update, err := setUpdateFromFlags()
		if err != nil {
			return err
		}

		_, position, err := st.LogSet(ex.ID, update)
		if err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}

		color.Green("✓ Logged %s set %d", ex.Name, position)
		return nil
	},
}

var workoutRemoveSetCmd = &cobra.Command{
	Use:     "remove-set <exercise> <set>",
	Aliases: []string{"rm-set"},
	Short:   "Remove a set",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		set, err := resolveSet(ex, args[1])
		if err != nil {
			return err
		}
		st.RemoveSet(ex.ID, set.ID)
		color.Yellow("✗ Removed set from %s", ex.Name)
		return nil
	},
}

var workoutNotesCmd = &cobra.Command{
	Use:   "notes <exercise> [text]",
	Short: "Set or clear exercise notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := lookupExercise(args[0])
		if err != nil {
			return err
		}
		notes := strings.Join(args[1:], " ")
		st.UpdateExerciseNotes(ex.ID, notes)
		if notes == "" {
			color.Yellow("✗ Cleared notes on %s", ex.Name)
		} else {
			color.Green("✓ Updated notes on %s", ex.Name)
		}
		return nil
	},
}

func lookupExercise(ref string) (*models.Exercise, error) {
	active, err := activeSession()
	if err != nil {
		return nil, err
	}
	return resolveExercise(active, ref)
}

// setUpdateFromFlags converts the set flags into a partial update. Empty
// string flags leave the field alone.
func setUpdateFromFlags() (models.SetUpdate, error) {
	var u models.SetUpdate
	if setDone && setUndone {
		return u, fmt.Errorf("--done and --undone are mutually exclusive")
	}
	if setReps != "" {
		q := models.Quantity(setReps)
		u.Reps = &q
	}
	if setWeight != "" {
		q := models.Quantity(setWeight)
		if q.IsNumeric() && q.Number() < 0 {
			return u, fmt.Errorf("weight cannot be negative")
		}
		u.Weight = &q
	}
	if setRPE != "" {
		q := models.Quantity(setRPE)
		u.RPE = &q
	}
	if setDuration != "" {
		secs, ok := duration.Parse(setDuration)
		if !ok {
			return u, fmt.Errorf("invalid duration: %s (use m:ss or whole minutes)", setDuration)
		}
		u.DurationSeconds = &secs
	}
	u.ClearDuration = setClearDuration
	if setDone {
		done := true
		u.Completed = &done
	}
	if setUndone {
		done := false
		u.Completed = &done
	}
	return u, nil
}

func addSetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&setReps, "reps", "r", "", "repetitions")
	cmd.Flags().StringVarP(&setWeight, "weight", "w", "", "weight in the configured units")
	cmd.Flags().StringVarP(&setDuration, "duration", "d", "", "duration as m:ss or whole minutes")
	cmd.Flags().StringVar(&setRPE, "rpe", "", "rate of perceived exertion")
	cmd.Flags().BoolVar(&setUndone, "undone", false, "mark the set incomplete")
}

func init() {
	workoutStartCmd.Flags().BoolVarP(&startForce, "force", "f", false, "replace an active workout")

	workoutAddExerciseCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "muscle group")
	workoutAddExerciseCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "category (cardio switches to time tracking)")

	addSetFlags(workoutSetCmd)
	workoutSetCmd.Flags().BoolVar(&setDone, "done", false, "mark the set completed")
	workoutSetCmd.Flags().BoolVar(&setClearDuration, "clear-duration", false, "remove the duration")
	addSetFlags(workoutLogCmd)

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutFinishCmd)
	workoutCmd.AddCommand(workoutCancelCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutAddExerciseCmd)
	workoutCmd.AddCommand(workoutRemoveExerciseCmd)
	workoutCmd.AddCommand(workoutModeCmd)
	workoutCmd.AddCommand(workoutAddSetCmd)
	workoutCmd.AddCommand(workoutCopySetCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutRemoveSetCmd)
	workoutCmd.AddCommand(workoutNotesCmd)
	rootCmd.AddCommand(workoutCmd)
}
