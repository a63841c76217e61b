// ABOUTME: Pure state transitions for sessions, sets, templates, settings, and bodyweight.
// ABOUTME: Each returns the next state and never modifies the state it was given.
package store

import (
	"errors"
	"sort"
	"strings"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

// EmptyWorkoutName names sessions started without a template.
const EmptyWorkoutName = "Empty Workout"

// DefaultRestSeconds is used when a template exercise has no rest prescription.
const DefaultRestSeconds = 90

var (
	ErrNoActiveSession    = errors.New("no active session")
	ErrNoCompletedSets    = errors.New("complete at least one set before finishing")
	ErrNegativeWeight     = errors.New("weight cannot be negative")
	ErrMissingPrimaryData = errors.New("completed sets must have reps or duration")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrExerciseNotFound   = errors.New("exercise not found in active session")
)

// StartWorkout installs a new active session, replacing any existing one.
// An empty templateID starts an empty session; an unknown one returns
// ErrTemplateNotFound and leaves the state unchanged.
func StartWorkout(s State, env Env, templateID string) (State, error) {
	if templateID == "" {
		session := models.WorkoutSession{
			ID:        env.NewID(),
			Name:      EmptyWorkoutName,
			StartTime: env.Now(),
			Exercises: []models.Exercise{},
			Status:    models.StatusActive,
		}
		s.ActiveSession = &session
		return s, nil
	}

	tmpl, ok := s.FindTemplate(templateID)
	if !ok {
		return s, ErrTemplateNotFound
	}

	session := models.WorkoutSession{
		ID:        env.NewID(),
		Name:      tmpl.Name,
		StartTime: env.Now(),
		Exercises: make([]models.Exercise, 0, len(tmpl.Exercises)),
		Status:    models.StatusActive,
	}
	for _, te := range tmpl.Exercises {
		session.Exercises = append(session.Exercises, exerciseFromTemplate(env, te))
	}
	s.ActiveSession = &session
	return s, nil
}

func exerciseFromTemplate(env Env, te models.TemplateExercise) models.Exercise {
	targetSets := te.TargetSets
	targetReps := te.TargetReps
	rest := DefaultRestSeconds
	if te.RestSeconds != nil {
		rest = *te.RestSeconds
	}
	working := true
	if te.IsWorkingDefault != nil {
		working = *te.IsWorkingDefault
	}

	initialReps := te.TargetReps
	if strings.Contains(initialReps, "-") {
		initialReps = strings.SplitN(initialReps, "-", 2)[0]
	}

	ex := models.Exercise{
		ID:           env.NewID(),
		Name:         te.Name,
		MuscleGroup:  te.MuscleGroup,
		TargetSets:   &targetSets,
		TargetReps:   &targetReps,
		RestSeconds:  &rest,
		IsWorking:    &working,
		TrackingMode: models.TrackingReps,
		Sets:         make([]models.Set, 0, max(te.TargetSets, 0)),
	}
	for i := 0; i < te.TargetSets; i++ {
		ex.Sets = append(ex.Sets, models.Set{ID: env.NewID(), Reps: models.Quantity(initialReps)})
	}
	return ex
}

// ValidateFinish checks a session against the finishing rules, in order:
// at least one completed set, no negative weight on completed sets, and
// reps or a positive duration on every completed set.
func ValidateFinish(session *models.WorkoutSession) error {
	if session == nil {
		return ErrNoActiveSession
	}
	if session.CompletedSets() == 0 {
		return ErrNoCompletedSets
	}
	for _, ex := range session.Exercises {
		for _, set := range ex.Sets {
			if set.Completed && set.Weight.IsNumeric() && set.Weight.Number() < 0 {
				return ErrNegativeWeight
			}
		}
	}
	for _, ex := range session.Exercises {
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			if ex.TrackingMode == models.TrackingTime {
				if set.DurationSeconds == nil || *set.DurationSeconds <= 0 {
					return ErrMissingPrimaryData
				}
				continue
			}
			reps := strings.TrimSpace(set.Reps.String())
			if reps == "" || reps == "0" {
				return ErrMissingPrimaryData
			}
		}
	}
	return nil
}

// FinishWorkout completes the active session and prepends it to history.
// On validation failure the state is returned unchanged with the reason.
func FinishWorkout(s State, env Env) (State, error) {
	if err := ValidateFinish(s.ActiveSession); err != nil {
		return s, err
	}
	done := cloneSession(*s.ActiveSession)
	end := env.Now()
	done.EndTime = &end
	done.Status = models.StatusCompleted

	history := make([]models.WorkoutSession, 0, len(s.History)+1)
	history = append(history, done)
	history = append(history, s.History...)
	s.History = history
	s.ActiveSession = nil
	return s, nil
}

// CancelWorkout discards the active session without recording it.
func CancelWorkout(s State) State {
	s.ActiveSession = nil
	return s
}

// withSession applies fn to a copy of the active session. Without an active
// session the state is returned as is.
func withSession(s State, fn func(*models.WorkoutSession)) State {
	if s.ActiveSession == nil {
		return s
	}
	next := cloneSession(*s.ActiveSession)
	fn(&next)
	s.ActiveSession = &next
	return s
}

// withExercise applies fn to the matching exercise of the active session.
func withExercise(s State, exerciseID string, fn func(*models.Exercise)) State {
	return withSession(s, func(w *models.WorkoutSession) {
		for i := range w.Exercises {
			if w.Exercises[i].ID == exerciseID {
				fn(&w.Exercises[i])
				return
			}
		}
	})
}

// AddExercise appends an exercise with one blank set to the active session.
// Cardio exercises start time-tracked. Returns "" without an active session.
func AddExercise(s State, env Env, name, muscleGroup, category string) (State, string) {
	if s.ActiveSession == nil {
		return s, ""
	}
	mode := models.TrackingReps
	if category == models.CategoryCardio {
		mode = models.TrackingTime
	}
	ex := models.Exercise{
		ID:           env.NewID(),
		Name:         name,
		MuscleGroup:  muscleGroup,
		TrackingMode: mode,
		Category:     category,
		Sets:         []models.Set{{ID: env.NewID()}},
	}
	next := withSession(s, func(w *models.WorkoutSession) {
		w.Exercises = append(w.Exercises, ex)
	})
	return next, ex.ID
}

// RemoveExercise drops an exercise from the active session.
func RemoveExercise(s State, exerciseID string) State {
	return withSession(s, func(w *models.WorkoutSession) {
		kept := w.Exercises[:0]
		for _, ex := range w.Exercises {
			if ex.ID != exerciseID {
				kept = append(kept, ex)
			}
		}
		w.Exercises = kept
	})
}

// ToggleTrackingMode flips reps and time. Existing set values are kept.
func ToggleTrackingMode(s State, exerciseID string) State {
	return withExercise(s, exerciseID, func(ex *models.Exercise) {
		ex.TrackingMode = ex.TrackingMode.Toggle()
	})
}

// UpdateExerciseNotes replaces an exercise's notes.
func UpdateExerciseNotes(s State, exerciseID, notes string) State {
	return withExercise(s, exerciseID, func(ex *models.Exercise) {
		ex.Notes = notes
	})
}

// UpdateSet merges the non-nil fields of u into the matching set.
func UpdateSet(s State, exerciseID, setID string, u models.SetUpdate) State {
	return withExercise(s, exerciseID, func(ex *models.Exercise) {
		for i := range ex.Sets {
			if ex.Sets[i].ID == setID {
				applySetUpdate(&ex.Sets[i], u)
				return
			}
		}
	})
}

func applySetUpdate(set *models.Set, u models.SetUpdate) {
	if u.Reps != nil {
		set.Reps = *u.Reps
	}
	if u.Weight != nil {
		set.Weight = *u.Weight
	}
	if u.ClearDuration {
		set.DurationSeconds = nil
	}
	if u.DurationSeconds != nil {
		set.DurationSeconds = cloneInt(u.DurationSeconds)
	}
	if u.RPE != nil {
		set.RPE = *u.RPE
	}
	if u.Completed != nil {
		set.Completed = *u.Completed
	}
}

// AddSet appends a blank set to an exercise.
func AddSet(s State, env Env, exerciseID string) State {
	return withExercise(s, exerciseID, func(ex *models.Exercise) {
		ex.Sets = append(ex.Sets, models.Set{ID: env.NewID()})
	})
}

// LogSet applies u to the exercise's next open set, appending a blank set
// first when none is open. It returns the set id and its 1-based position.
func LogSet(s State, env Env, exerciseID string, u models.SetUpdate) (State, string, int, error) {
	if s.ActiveSession == nil {
		return s, "", 0, ErrNoActiveSession
	}
	var setID string
	position := 0
	next := withExercise(s, exerciseID, func(ex *models.Exercise) {
		i := ex.NextOpenSet()
		if i < 0 {
			ex.Sets = append(ex.Sets, models.Set{ID: env.NewID()})
			i = len(ex.Sets) - 1
		}
		applySetUpdate(&ex.Sets[i], u)
		setID, position = ex.Sets[i].ID, i+1
	})
	if position == 0 {
		return s, "", 0, ErrExerciseNotFound
	}
	return next, setID, position, nil
}

// CopyLastSet appends a set carrying the previous set's weight, reps, and
// duration. The copy is never completed.
func CopyLastSet(s State, env Env, exerciseID string) State {
	return withExercise(s, exerciseID, func(ex *models.Exercise) {
		next := models.Set{ID: env.NewID()}
		if n := len(ex.Sets); n > 0 {
			last := ex.Sets[n-1]
			next.Weight = last.Weight
			next.Reps = last.Reps
			next.DurationSeconds = cloneInt(last.DurationSeconds)
		}
		ex.Sets = append(ex.Sets, next)
	})
}

// RemoveSet drops a set from an exercise.
func RemoveSet(s State, exerciseID, setID string) State {
	return withExercise(s, exerciseID, func(ex *models.Exercise) {
		kept := ex.Sets[:0]
		for _, set := range ex.Sets {
			if set.ID != setID {
				kept = append(kept, set)
			}
		}
		ex.Sets = kept
	})
}

// CreateTemplate appends t under a new id and returns that id.
func CreateTemplate(s State, env Env, t models.Template) (State, string) {
	t = cloneTemplate(t)
	t.ID = env.NewID()
	if t.Exercises == nil {
		t.Exercises = []models.TemplateExercise{}
	}
	for i := range t.Exercises {
		if t.Exercises[i].ID == "" {
			t.Exercises[i].ID = env.NewID()
		}
	}
	templates := make([]models.Template, 0, len(s.Templates)+1)
	templates = append(templates, s.Templates...)
	s.Templates = append(templates, t)
	return s, t.ID
}

// UpdateTemplate merges the non-nil fields of u into the matching template.
func UpdateTemplate(s State, id string, u models.TemplateUpdate) State {
	idx := -1
	for i := range s.Templates {
		if s.Templates[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	t := cloneTemplate(s.Templates[idx])
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Exercises != nil {
		t.Exercises = append([]models.TemplateExercise{}, (*u.Exercises)...)
	}
	if u.Tags != nil {
		t.Tags = append([]string{}, (*u.Tags)...)
	}
	if u.LastPerformed != nil {
		lp := *u.LastPerformed
		t.LastPerformed = &lp
	}
	templates := append([]models.Template{}, s.Templates...)
	templates[idx] = t
	s.Templates = templates
	return s
}

// DeleteTemplate removes a template. Deleting every template leaves the list
// empty; defaults are not restored.
func DeleteTemplate(s State, id string) State {
	templates := make([]models.Template, 0, len(s.Templates))
	for _, t := range s.Templates {
		if t.ID != id {
			templates = append(templates, t)
		}
	}
	s.Templates = templates
	return s
}

// ToggleTheme flips between light and dark.
func ToggleTheme(s State) State {
	if s.Settings.Theme == models.ThemeLight {
		s.Settings.Theme = models.ThemeDark
	} else {
		s.Settings.Theme = models.ThemeLight
	}
	return s
}

// ToggleUnits flips between kilograms and pounds.
func ToggleUnits(s State) State {
	if s.Settings.Units == models.UnitsKg {
		s.Settings.Units = models.UnitsLb
	} else {
		s.Settings.Units = models.UnitsKg
	}
	return s
}

// DeleteHistoryItem removes a completed session.
func DeleteHistoryItem(s State, id string) State {
	history := make([]models.WorkoutSession, 0, len(s.History))
	for _, w := range s.History {
		if w.ID != id {
			history = append(history, w)
		}
	}
	s.History = history
	return s
}

// DuplicateWorkout starts a new active session copied from a history entry,
// with fresh ids and every set reset to incomplete. It replaces any existing
// active session. An unknown id returns ErrWorkoutNotFound.
func DuplicateWorkout(s State, env Env, id string) (State, error) {
	src, ok := s.FindHistory(id)
	if !ok {
		return s, ErrWorkoutNotFound
	}

	session := models.WorkoutSession{
		ID:        env.NewID(),
		Name:      src.Name,
		StartTime: env.Now(),
		Exercises: make([]models.Exercise, 0, len(src.Exercises)),
		Status:    models.StatusActive,
	}
	for _, ex := range src.Exercises {
		c := cloneExercise(ex)
		c.ID = env.NewID()
		if c.TrackingMode == "" {
			c.TrackingMode = models.TrackingReps
		}
		for i := range c.Sets {
			c.Sets[i] = models.Set{
				ID:              env.NewID(),
				Weight:          c.Sets[i].Weight,
				Reps:            c.Sets[i].Reps,
				DurationSeconds: c.Sets[i].DurationSeconds,
			}
		}
		session.Exercises = append(session.Exercises, c)
	}
	s.ActiveSession = &session
	return s, nil
}

// AddBodyWeightEntry records a bodyweight entry under a new id. Entries stay
// ordered newest date first.
func AddBodyWeightEntry(s State, env Env, e models.BodyWeightEntry) (State, string) {
	e.ID = env.NewID()
	if e.Unit == "" {
		e.Unit = s.Settings.Units
	}
	entries := make([]models.BodyWeightEntry, 0, len(s.Bodyweight)+1)
	entries = append(entries, s.Bodyweight...)
	entries = append(entries, e)
	sortBodyweight(entries)
	s.Bodyweight = entries
	return s, e.ID
}

// UpdateBodyWeightEntry merges the non-nil fields of u into the matching entry.
func UpdateBodyWeightEntry(s State, id string, u models.BodyWeightUpdate) State {
	entries := append([]models.BodyWeightEntry{}, s.Bodyweight...)
	found := false
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		found = true
		if u.DateISO != nil {
			entries[i].DateISO = *u.DateISO
		}
		if u.Weight != nil {
			entries[i].Weight = *u.Weight
		}
		if u.Unit != nil {
			entries[i].Unit = *u.Unit
		}
		if u.Note != nil {
			entries[i].Note = *u.Note
		}
	}
	if !found {
		return s
	}
	sortBodyweight(entries)
	s.Bodyweight = entries
	return s
}

// DeleteBodyWeightEntry removes a bodyweight entry.
func DeleteBodyWeightEntry(s State, id string) State {
	entries := make([]models.BodyWeightEntry, 0, len(s.Bodyweight))
	for _, e := range s.Bodyweight {
		if e.ID != id {
			entries = append(entries, e)
		}
	}
	s.Bodyweight = entries
	return s
}

func sortBodyweight(entries []models.BodyWeightEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].DateISO > entries[j].DateISO })
}

// MergeSummary counts records added by Merge.
type MergeSummary struct {
	Workouts   int
	Templates  int
	Bodyweight int
}

// Merge adds history, templates, and bodyweight entries from incoming whose
// ids are not already present. Existing records win. Settings and the active
// session are left alone.
func Merge(s State, incoming State) (State, MergeSummary) {
	var sum MergeSummary

	seen := make(map[string]bool, len(s.History))
	for _, w := range s.History {
		seen[w.ID] = true
	}
	history := append([]models.WorkoutSession{}, s.History...)
	for _, w := range incoming.History {
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		c := cloneSession(w)
		if c.Status == "" {
			c.Status = models.StatusCompleted
		}
		normalizeSession(&c)
		history = append(history, c)
		sum.Workouts++
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].StartTime.After(history[j].StartTime) })

	seen = make(map[string]bool, len(s.Templates))
	for _, t := range s.Templates {
		seen[t.ID] = true
	}
	templates := append([]models.Template{}, s.Templates...)
	for _, t := range incoming.Templates {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		templates = append(templates, cloneTemplate(t))
		sum.Templates++
	}

	seen = make(map[string]bool, len(s.Bodyweight))
	for _, e := range s.Bodyweight {
		seen[e.ID] = true
	}
	entries := append([]models.BodyWeightEntry{}, s.Bodyweight...)
	for _, e := range incoming.Bodyweight {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		entries = append(entries, e)
		sum.Bodyweight++
	}
	sortBodyweight(entries)

	s.History = history
	s.Templates = templates
	s.Bodyweight = entries
	return s, sum
}
