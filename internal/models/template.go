// ABOUTME: Template models describing reusable workout plans.
// ABOUTME: Template exercises carry prescriptions copied into new sessions.
package models

import (
	"encoding/json"
	"time"
)

// TemplateExercise is a planned exercise prescription inside a template.
type TemplateExercise struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	MuscleGroup      string `json:"muscleGroup"`
	TargetSets       int    `json:"targetSets"`
	TargetReps       string `json:"targetReps"`
	RestSeconds      *int   `json:"restSeconds,omitempty"`
	IsWorkingDefault *bool  `json:"isWorkingDefault,omitempty"`
}

// Template is a named, reusable workout plan.
type Template struct {
	ID            string
	Name          string
	Description   string
	Exercises     []TemplateExercise
	Tags          []string
	LastPerformed *time.Time
}

type templateJSON struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	Exercises     []TemplateExercise `json:"exercises"`
	Tags          []string           `json:"tags,omitempty"`
	LastPerformed *int64             `json:"lastPerformed,omitempty"`
}

// MarshalJSON writes lastPerformed as epoch milliseconds.
func (t Template) MarshalJSON() ([]byte, error) {
	out := templateJSON{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Exercises:   t.Exercises,
		Tags:        t.Tags,
	}
	if out.Exercises == nil {
		out.Exercises = []TemplateExercise{}
	}
	if t.LastPerformed != nil {
		ms := t.LastPerformed.UnixMilli()
		out.LastPerformed = &ms
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads lastPerformed as epoch milliseconds.
func (t *Template) UnmarshalJSON(data []byte) error {
	var in templateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*t = Template{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Exercises:   in.Exercises,
		Tags:        in.Tags,
	}
	if t.Exercises == nil {
		t.Exercises = []TemplateExercise{}
	}
	if in.LastPerformed != nil {
		lp := time.UnixMilli(*in.LastPerformed).UTC()
		t.LastPerformed = &lp
	}
	return nil
}

// TemplateUpdate is a partial template edit. Nil fields are left unchanged.
type TemplateUpdate struct {
	Name          *string
	Description   *string
	Exercises     *[]TemplateExercise
	Tags          *[]string
	LastPerformed *time.Time
}
