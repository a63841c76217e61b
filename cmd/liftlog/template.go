// ABOUTME: CLI commands for workout templates.
// ABOUTME: Supports list, show, create, rename, and delete subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

var (
	templateDescription string
	templateTags        []string
	templateExercises   []string
	templateFrom        string
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"t", "templates"},
	Short:   "Manage workout templates",
	Long: `Templates are reusable workout plans. Starting a workout from a template
copies its exercises with the prescribed number of sets.

A set of built-in templates ships with liftlog. Deleting them all leaves the
list empty; they are not recreated.`,
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		templates := st.Snapshot().Templates
		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}

		for _, t := range templates {
			last := ""
			if t.LastPerformed != nil {
				last = faint.Sprintf(" last %s", dateOf(*t.LastPerformed))
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(padRight(shortID(t.ID), 14)),
				padRight(t.Name, 20),
				faint.Sprintf("%d exercises", len(t.Exercises)),
				last)
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTemplate(st.Snapshot().Templates, args[0])
		if err != nil {
			return err
		}

		accent.Printf("%s\n", t.Name)
		fmt.Printf("  ID: %s\n", t.ID)
		if t.Description != "" {
			fmt.Printf("  %s\n", t.Description)
		}
		if len(t.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(t.Tags, ", "))
		}
		fmt.Println()
		for i, te := range t.Exercises {
			rest := ""
			if te.RestSeconds != nil {
				rest = faint.Sprintf(" rest %ds", *te.RestSeconds)
			}
			fmt.Printf("%d. %s %s %s%s\n",
				i+1,
				padRight(te.Name, 40),
				faint.Sprint(padRight(te.MuscleGroup, 10)),
				fmt.Sprintf("%dx%s", te.TargetSets, te.TargetReps),
				rest)
		}
		return nil
	},
}

var templateCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a template",
	Long: `Create a template from exercise specs or from a past workout.

Exercise specs use the form "name|muscle group|sets|reps[|rest seconds]".

Examples:
  liftlog template create "Push" \
    --exercise "Bench Press|Chest|4|6-8|120" \
    --exercise "Lateral Raise|Shoulders|3|12-15"
  liftlog template create "Friday" --from 3f2a1b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := models.Template{
			Name:        strings.TrimSpace(args[0]),
			Description: templateDescription,
			Tags:        templateTags,
		}
		if t.Name == "" {
			return fmt.Errorf("template name is required")
		}

		if templateFrom != "" {
			w, err := resolveHistory(st.Snapshot().History, templateFrom)
			if err != nil {
				return err
			}
			t.Exercises = templateExercisesFrom(w)
		}
		for _, spec := range templateExercises {
			te, err := parseTemplateExercise(spec)
			if err != nil {
				return err
			}
			t.Exercises = append(t.Exercises, te)
		}

		id := st.CreateTemplate(t)
		color.Green("✓ Created template %s", t.Name)
		fmt.Printf("  ID: %s\n", shortID(id))
		fmt.Printf("  %d exercises\n", len(t.Exercises))
		return nil
	},
}

var templateRenameCmd = &cobra.Command{
	Use:   "rename <template> <new name>",
	Short: "Rename a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTemplate(st.Snapshot().Templates, args[0])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(args[1])
		if name == "" {
			return fmt.Errorf("template name is required")
		}
		update := models.TemplateUpdate{Name: &name}
		if cmd.Flags().Changed("description") {
			update.Description = &templateDescription
		}
		st.UpdateTemplate(t.ID, update)
		color.Green("✓ Renamed %s to %s", t.Name, name)
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:     "delete <template>",
	Aliases: []string{"rm"},
	Short:   "Delete a template",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTemplate(st.Snapshot().Templates, args[0])
		if err != nil {
			return err
		}
		st.DeleteTemplate(t.ID)
		color.Yellow("✗ Deleted template %s", t.Name)
		return nil
	},
}

func parseTemplateExercise(spec string) (models.TemplateExercise, error) {
	parts := strings.Split(spec, "|")
	if len(parts) < 4 || len(parts) > 5 {
		return models.TemplateExercise{}, fmt.Errorf("invalid exercise spec %q (use name|muscle|sets|reps[|rest])", spec)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return models.TemplateExercise{}, fmt.Errorf("invalid exercise spec %q: name is required", spec)
	}
	sets, err := strconv.Atoi(parts[2])
	if err != nil || sets < 1 {
		return models.TemplateExercise{}, fmt.Errorf("invalid exercise spec %q: sets must be a positive integer", spec)
	}

	te := models.TemplateExercise{
		Name:        parts[0],
		MuscleGroup: parts[1],
		TargetSets:  sets,
		TargetReps:  parts[3],
	}
	if len(parts) == 5 && parts[4] != "" {
		rest, err := strconv.Atoi(parts[4])
		if err != nil || rest < 0 {
			return models.TemplateExercise{}, fmt.Errorf("invalid exercise spec %q: rest must be seconds", spec)
		}
		te.RestSeconds = &rest
	}
	return te, nil
}

// templateExercisesFrom turns a past workout into prescriptions: one entry per
// exercise with its completed set count and the reps of its first completed set.
func templateExercisesFrom(w *models.WorkoutSession) []models.TemplateExercise {
	out := make([]models.TemplateExercise, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		te := models.TemplateExercise{
			Name:             ex.Name,
			MuscleGroup:      ex.MuscleGroup,
			TargetSets:       max(ex.CompletedSets(), 1),
			RestSeconds:      ex.RestSeconds,
			IsWorkingDefault: ex.IsWorking,
		}
		for _, s := range ex.Sets {
			if s.Completed && !s.Reps.IsBlank() {
				te.TargetReps = s.Reps.String()
				break
			}
		}
		out = append(out, te)
	}
	return out
}

func init() {
	templateCreateCmd.Flags().StringVar(&templateDescription, "description", "", "template description")
	templateCreateCmd.Flags().StringSliceVar(&templateTags, "tag", nil, "tag (repeatable)")
	templateCreateCmd.Flags().StringArrayVarP(&templateExercises, "exercise", "e", nil, "exercise spec name|muscle|sets|reps[|rest] (repeatable)")
	templateCreateCmd.Flags().StringVar(&templateFrom, "from", "", "copy exercises from a past workout ID")
	templateRenameCmd.Flags().StringVar(&templateDescription, "description", "", "also replace the description")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateRenameCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}
