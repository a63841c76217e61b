// ABOUTME: Application state snapshot and the environment transitions draw from.
// ABOUTME: Snapshots are treated as immutable; transitions build new ones.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

// State is one consistent snapshot of everything the store owns.
// History is ordered most-recent-first.
type State struct {
	ActiveSession *models.WorkoutSession
	History       []models.WorkoutSession
	Templates     []models.Template
	Settings      models.Settings
	Bodyweight    []models.BodyWeightEntry
}

// NewState returns a fresh state with the built-in templates and default settings.
func NewState() State {
	return State{
		History:    []models.WorkoutSession{},
		Templates:  DefaultTemplates(),
		Settings:   models.DefaultSettings(),
		Bodyweight: []models.BodyWeightEntry{},
	}
}

// Env supplies time and identifiers to transitions.
type Env struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultEnv uses the wall clock and random UUIDs.
func DefaultEnv() Env {
	return Env{Now: time.Now, NewID: uuid.NewString}
}

// FindHistory returns the history entry with the given id.
func (s State) FindHistory(id string) (*models.WorkoutSession, bool) {
	for i := range s.History {
		if s.History[i].ID == id {
			return &s.History[i], true
		}
	}
	return nil, false
}

// FindTemplate returns the template with the given id.
func (s State) FindTemplate(id string) (*models.Template, bool) {
	for i := range s.Templates {
		if s.Templates[i].ID == id {
			return &s.Templates[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{
		Settings:   s.Settings,
		History:    make([]models.WorkoutSession, len(s.History)),
		Templates:  make([]models.Template, len(s.Templates)),
		Bodyweight: append([]models.BodyWeightEntry{}, s.Bodyweight...),
	}
	if s.ActiveSession != nil {
		a := cloneSession(*s.ActiveSession)
		out.ActiveSession = &a
	}
	for i := range s.History {
		out.History[i] = cloneSession(s.History[i])
	}
	for i := range s.Templates {
		out.Templates[i] = cloneTemplate(s.Templates[i])
	}
	return out
}

func cloneSession(w models.WorkoutSession) models.WorkoutSession {
	out := w
	if w.EndTime != nil {
		t := *w.EndTime
		out.EndTime = &t
	}
	out.Exercises = make([]models.Exercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		out.Exercises[i] = cloneExercise(ex)
	}
	return out
}

func cloneExercise(ex models.Exercise) models.Exercise {
	out := ex
	out.Sets = make([]models.Set, len(ex.Sets))
	for i, s := range ex.Sets {
		out.Sets[i] = s
		out.Sets[i].DurationSeconds = cloneInt(s.DurationSeconds)
	}
	out.TargetSets = cloneInt(ex.TargetSets)
	out.RestSeconds = cloneInt(ex.RestSeconds)
	if ex.TargetReps != nil {
		r := *ex.TargetReps
		out.TargetReps = &r
	}
	if ex.IsWorking != nil {
		w := *ex.IsWorking
		out.IsWorking = &w
	}
	return out
}

func cloneTemplate(t models.Template) models.Template {
	out := t
	out.Exercises = make([]models.TemplateExercise, len(t.Exercises))
	for i, te := range t.Exercises {
		out.Exercises[i] = te
		out.Exercises[i].RestSeconds = cloneInt(te.RestSeconds)
		if te.IsWorkingDefault != nil {
			w := *te.IsWorkingDefault
			out.Exercises[i].IsWorkingDefault = &w
		}
	}
	if t.Tags != nil {
		out.Tags = append([]string{}, t.Tags...)
	}
	if t.LastPerformed != nil {
		lp := *t.LastPerformed
		out.LastPerformed = &lp
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
