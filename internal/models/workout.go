// ABOUTME: Workout session, exercise, and set models for lift tracking.
// ABOUTME: Sessions serialize timestamps as epoch milliseconds for the persisted blob.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TrackingMode selects whether an exercise's sets record reps or elapsed time.
type TrackingMode string

const (
	TrackingReps TrackingMode = "reps"
	TrackingTime TrackingMode = "time"
)

// Toggle returns the opposite tracking mode.
func (m TrackingMode) Toggle() TrackingMode {
	if m == TrackingReps {
		return TrackingTime
	}
	return TrackingReps
}

// Status is the lifecycle state of a session.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// CategoryCardio marks exercises that default to time tracking.
const CategoryCardio = "cardio"

// Set is one logged attempt within an exercise.
type Set struct {
	ID              string   `json:"id"`
	Reps            Quantity `json:"reps"`
	Weight          Quantity `json:"weight"`
	DurationSeconds *int     `json:"durationSeconds"`
	RPE             Quantity `json:"rpe,omitempty"`
	Completed       bool     `json:"completed"`
}

// NewSet creates a blank, incomplete set.
func NewSet() Set {
	return Set{ID: uuid.NewString()}
}

// SetUpdate is a partial set edit. Nil fields are left unchanged.
// ClearDuration resets DurationSeconds to null.
type SetUpdate struct {
	Reps            *Quantity
	Weight          *Quantity
	DurationSeconds *int
	ClearDuration   bool
	RPE             *Quantity
	Completed       *bool
}

// Exercise is one exercise performed within one session.
type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	MuscleGroup  string       `json:"muscleGroup"`
	Sets         []Set        `json:"sets"`
	Notes        string       `json:"notes,omitempty"`
	TargetSets   *int         `json:"targetSets,omitempty"`
	TargetReps   *string      `json:"targetReps,omitempty"`
	RestSeconds  *int         `json:"restSeconds,omitempty"`
	IsWorking    *bool        `json:"isWorking,omitempty"`
	TrackingMode TrackingMode `json:"trackingMode"`
	Category     string       `json:"category,omitempty"`
}

// IsRepTracked reports whether sets are measured in reps.
func (e *Exercise) IsRepTracked() bool {
	return e.TrackingMode != TrackingTime
}

// CompletedSets returns the number of completed sets.
func (e *Exercise) CompletedSets() int {
	n := 0
	for _, s := range e.Sets {
		if s.Completed {
			n++
		}
	}
	return n
}

// Volume sums weight x reps across sets that count toward training load.
func (e *Exercise) Volume() float64 {
	var total float64
	for _, s := range e.Sets {
		if v, ok := e.SetVolume(s); ok {
			total += v
		}
	}
	return total
}

// NextOpenSet returns the index of the first incomplete set with no weight or
// duration entered, or -1. Reps are ignored because template sets arrive with
// reps prefilled.
func (e *Exercise) NextOpenSet() int {
	for i, s := range e.Sets {
		if !s.Completed && s.Weight.IsBlank() && s.DurationSeconds == nil {
			return i
		}
	}
	return -1
}

// SetVolume returns weight x reps for a set when it counts toward volume:
// completed, in a rep-tracked exercise, with positive weight and reps.
func (e *Exercise) SetVolume(s Set) (float64, bool) {
	if !s.Completed || !e.IsRepTracked() {
		return 0, false
	}
	w, r := s.Weight.Number(), s.Reps.Number()
	if w <= 0 || r <= 0 {
		return 0, false
	}
	return w * r, true
}

// WorkoutSession is one workout occurrence, active or completed.
type WorkoutSession struct {
	ID        string
	Name      string
	StartTime time.Time
	EndTime   *time.Time
	Exercises []Exercise
	Status    Status
}

// NewWorkoutSession creates an active session started at the given time.
func NewWorkoutSession(name string, start time.Time) *WorkoutSession {
	return &WorkoutSession{
		ID:        uuid.NewString(),
		Name:      name,
		StartTime: start,
		Exercises: []Exercise{},
		Status:    StatusActive,
	}
}

// IsCompleted reports whether the session has been finished.
func (w *WorkoutSession) IsCompleted() bool {
	return w.Status == StatusCompleted
}

// Duration returns end minus start, or zero for unfinished sessions.
func (w *WorkoutSession) Duration() time.Duration {
	if w.EndTime == nil {
		return 0
	}
	return w.EndTime.Sub(w.StartTime)
}

// CompletedSets counts completed sets across all exercises.
func (w *WorkoutSession) CompletedSets() int {
	n := 0
	for i := range w.Exercises {
		n += w.Exercises[i].CompletedSets()
	}
	return n
}

// Volume sums exercise volume across the session.
func (w *WorkoutSession) Volume() float64 {
	var total float64
	for i := range w.Exercises {
		total += w.Exercises[i].Volume()
	}
	return total
}

type sessionJSON struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartTime int64      `json:"startTime"`
	EndTime   *int64     `json:"endTime,omitempty"`
	Exercises []Exercise `json:"exercises"`
	Status    Status     `json:"status"`
}

// MarshalJSON writes timestamps as epoch milliseconds.
func (w WorkoutSession) MarshalJSON() ([]byte, error) {
	out := sessionJSON{
		ID:        w.ID,
		Name:      w.Name,
		StartTime: w.StartTime.UnixMilli(),
		Exercises: w.Exercises,
		Status:    w.Status,
	}
	if out.Exercises == nil {
		out.Exercises = []Exercise{}
	}
	if w.EndTime != nil {
		ms := w.EndTime.UnixMilli()
		out.EndTime = &ms
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads epoch-millisecond timestamps.
func (w *WorkoutSession) UnmarshalJSON(data []byte) error {
	var in sessionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	w.ID = in.ID
	w.Name = in.Name
	w.StartTime = time.UnixMilli(in.StartTime).UTC()
	w.EndTime = nil
	if in.EndTime != nil {
		t := time.UnixMilli(*in.EndTime).UTC()
		w.EndTime = &t
	}
	w.Exercises = in.Exercises
	if w.Exercises == nil {
		w.Exercises = []Exercise{}
	}
	w.Status = in.Status
	return nil
}
