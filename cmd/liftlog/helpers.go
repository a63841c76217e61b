// ABOUTME: Shared CLI helpers for formatting and resolving IDs.
// ABOUTME: IDs can be given as unique prefixes; exercises and sets also accept 1-based positions.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
	"github.com/CiaoGab/LIFTLOG/internal/duration"
	"github.com/CiaoGab/LIFTLOG/internal/models"
)

var faint = color.New(color.Faint)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

// parseDate validates a YYYY-MM-DD calendar date.
func parseDate(s string) (string, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", s)
	}
	return s, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// resolveID finds the single item whose id equals ref or starts with it.
func resolveID[T any](items []T, idOf func(T) string, ref, kind string) (int, error) {
	if ref == "" {
		return -1, fmt.Errorf("%s ID is required", kind)
	}
	match := -1
	for i, item := range items {
		id := idOf(item)
		if id == ref {
			return i, nil
		}
		if strings.HasPrefix(id, ref) {
			if match >= 0 {
				return -1, fmt.Errorf("ambiguous %s ID prefix: %s", kind, ref)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%s not found: %s", kind, ref)
	}
	return match, nil
}

func resolveHistory(history []models.WorkoutSession, ref string) (*models.WorkoutSession, error) {
	i, err := resolveID(history, func(w models.WorkoutSession) string { return w.ID }, ref, "workout")
	if err != nil {
		return nil, err
	}
	return &history[i], nil
}

// resolveTemplate accepts an id, id prefix, or case-insensitive name.
func resolveTemplate(templates []models.Template, ref string) (*models.Template, error) {
	for i := range templates {
		if strings.EqualFold(templates[i].Name, ref) {
			return &templates[i], nil
		}
	}
	i, err := resolveID(templates, func(t models.Template) string { return t.ID }, ref, "template")
	if err != nil {
		return nil, err
	}
	return &templates[i], nil
}

func resolveBodyweight(entries []models.BodyWeightEntry, ref string) (*models.BodyWeightEntry, error) {
	i, err := resolveID(entries, func(e models.BodyWeightEntry) string { return e.ID }, ref, "bodyweight entry")
	if err != nil {
		return nil, err
	}
	return &entries[i], nil
}

// resolveExercise accepts a 1-based position, an id or id prefix, or a
// case-insensitive name or name prefix.
func resolveExercise(w *models.WorkoutSession, ref string) (*models.Exercise, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(w.Exercises) {
			return nil, fmt.Errorf("exercise %d out of range (1-%d)", n, len(w.Exercises))
		}
		return &w.Exercises[n-1], nil
	}

	lower := strings.ToLower(ref)
	var byPrefix []*models.Exercise
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		if ex.ID == ref || strings.ToLower(ex.Name) == lower {
			return ex, nil
		}
		if strings.HasPrefix(ex.ID, ref) || strings.HasPrefix(strings.ToLower(ex.Name), lower) {
			byPrefix = append(byPrefix, ex)
		}
	}
	switch len(byPrefix) {
	case 0:
		return nil, fmt.Errorf("exercise not found: %s", ref)
	case 1:
		return byPrefix[0], nil
	default:
		return nil, fmt.Errorf("ambiguous exercise: %s matches %d exercises", ref, len(byPrefix))
	}
}

// resolveSet accepts a 1-based position or an id prefix.
func resolveSet(ex *models.Exercise, ref string) (*models.Set, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(ex.Sets) {
			return nil, fmt.Errorf("set %d out of range (1-%d)", n, len(ex.Sets))
		}
		return &ex.Sets[n-1], nil
	}
	i, err := resolveID(ex.Sets, func(s models.Set) string { return s.ID }, ref, "set")
	if err != nil {
		return nil, err
	}
	return &ex.Sets[i], nil
}

func activeSession() (*models.WorkoutSession, error) {
	active := st.Snapshot().ActiveSession
	if active == nil {
		return nil, fmt.Errorf("no active workout (start one with 'liftlog workout start')")
	}
	return active, nil
}

func formatSet(ex *models.Exercise, s models.Set, units models.Units) string {
	var parts []string
	if ex.IsRepTracked() {
		weight := s.Weight.String()
		if weight == "" {
			weight = "-"
		}
		reps := s.Reps.String()
		if reps == "" {
			reps = "-"
		}
		parts = append(parts, fmt.Sprintf("%s %s x %s", weight, units, reps))
	} else {
		d := duration.Format(s.DurationSeconds)
		if d == "" {
			d = "-:--"
		}
		parts = append(parts, d)
	}
	if !s.RPE.IsBlank() {
		parts = append(parts, "@"+s.RPE.String())
	}
	return strings.Join(parts, " ")
}

func printSession(w *models.WorkoutSession, units models.Units) {
	accent.Printf("%s\n", w.Name)
	fmt.Printf("  ID: %s\n", shortID(w.ID))
	fmt.Printf("  Started: %s\n", w.StartTime.Local().Format("2006-01-02 15:04"))
	if w.EndTime != nil {
		fmt.Printf("  Duration: %s\n", duration.FormatSeconds(int(w.Duration().Seconds())))
	}
	fmt.Printf("  Sets: %d  Volume: %s %s\n", w.CompletedSets(), formatNumber(w.Volume()), units)

	done := color.New(color.FgGreen)
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		mode := ""
		if !ex.IsRepTracked() {
			mode = faint.Sprint(" [time]")
		}
		target := ""
		if ex.TargetSets != nil && ex.TargetReps != nil {
			target = faint.Sprintf(" %dx%s", *ex.TargetSets, *ex.TargetReps)
		}
		fmt.Printf("\n%d. %s%s%s %s\n", i+1, ex.Name, target, mode, faint.Sprint(ex.MuscleGroup))
		if ex.Notes != "" {
			fmt.Printf("   %s\n", faint.Sprint(ex.Notes))
		}
		for j, s := range ex.Sets {
			mark := faint.Sprint("○")
			if s.Completed {
				mark = done.Sprint("✓")
			}
			fmt.Printf("   %s %d  %s\n", mark, j+1, formatSet(ex, s, units))
		}
	}
}

func dateOf(t time.Time) string {
	return analytics.DateISO(t)
}
