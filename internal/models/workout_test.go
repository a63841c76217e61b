// ABOUTME: Tests for workout session models.
// ABOUTME: Validates volume rules and the epoch-millisecond JSON layout.
package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSetVolumeRules(t *testing.T) {
	reps := Exercise{TrackingMode: TrackingReps}
	timed := Exercise{TrackingMode: TrackingTime}

	tests := []struct {
		name string
		ex   Exercise
		set  Set
		want float64
		ok   bool
	}{
		{"counted", reps, Set{Weight: "100", Reps: "5", Completed: true}, 500, true},
		{"incomplete", reps, Set{Weight: "100", Reps: "5"}, 0, false},
		{"time tracked", timed, Set{Weight: "100", Reps: "5", Completed: true}, 0, false},
		{"zero weight", reps, Set{Weight: "0", Reps: "5", Completed: true}, 0, false},
		{"blank reps", reps, Set{Weight: "100", Completed: true}, 0, false},
		{"text reps", reps, Set{Weight: "100", Reps: "AMRAP", Completed: true}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ex.SetVolume(tt.set)
			if got != tt.want || ok != tt.ok {
				t.Errorf("SetVolume = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSessionVolume(t *testing.T) {
	w := NewWorkoutSession("Push", time.Now())
	w.Exercises = []Exercise{{
		TrackingMode: TrackingReps,
		Sets: []Set{
			{Weight: "100", Reps: "10", Completed: true},
			{Weight: "110", Reps: "8", Completed: true},
			{Weight: "120", Reps: "5"},
		},
	}}
	if got := w.Volume(); got != 1880 {
		t.Errorf("Volume = %v, want 1880", got)
	}
	if got := w.CompletedSets(); got != 2 {
		t.Errorf("CompletedSets = %d, want 2", got)
	}
}

func TestWorkoutSessionJSON(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	w := WorkoutSession{
		ID:        "w1",
		Name:      "Upper A",
		StartTime: start,
		EndTime:   &end,
		Status:    StatusCompleted,
	}

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"startTime":1709546400000`) {
		t.Errorf("expected epoch millis startTime, got %s", data)
	}
	if !strings.Contains(string(data), `"exercises":[]`) {
		t.Errorf("expected empty exercises array, got %s", data)
	}

	var back WorkoutSession
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.StartTime.Equal(start) || back.EndTime == nil || !back.EndTime.Equal(end) {
		t.Errorf("timestamps not preserved: %v %v", back.StartTime, back.EndTime)
	}
	if back.Duration() != 45*time.Minute {
		t.Errorf("Duration = %v, want 45m", back.Duration())
	}
}

func TestTrackingModeToggle(t *testing.T) {
	if TrackingReps.Toggle() != TrackingTime {
		t.Error("reps should toggle to time")
	}
	if TrackingTime.Toggle() != TrackingReps {
		t.Error("time should toggle to reps")
	}
}

func TestNextOpenSet(t *testing.T) {
	secs := 60
	ex := Exercise{Sets: []Set{
		{ID: "a", Weight: "60", Reps: "8", Completed: true},
		{ID: "b", Reps: "8", DurationSeconds: &secs},
		{ID: "c", Reps: "8"},
		{ID: "d"},
	}}
	if got := ex.NextOpenSet(); got != 2 {
		t.Errorf("NextOpenSet() = %d, want 2", got)
	}

	full := Exercise{Sets: []Set{{ID: "a", Weight: "60", Completed: true}}}
	if got := full.NextOpenSet(); got != -1 {
		t.Errorf("NextOpenSet() = %d, want -1", got)
	}
}
