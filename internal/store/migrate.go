// ABOUTME: Decodes, normalizes, and encodes the persisted state blob.
// ABOUTME: Older blobs missing templates or tracking fields load with defaults.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

// persistedState is the on-disk layout. Templates is a pointer so that a
// missing key can be told apart from an intentionally emptied list.
type persistedState struct {
	ActiveSession *models.WorkoutSession   `json:"activeSession"`
	History       []models.WorkoutSession  `json:"history"`
	Templates     *[]models.Template       `json:"templates"`
	Settings      *partialSettings         `json:"settings"`
	Bodyweight    []models.BodyWeightEntry `json:"bodyweight"`
}

type partialSettings struct {
	Theme models.Theme `json:"theme"`
	Units models.Units `json:"units"`
}

// Decode parses a persisted blob and applies migration. A nil or empty blob
// yields a fresh state. Blobs wrapped as {"state": {...}, "version": n} are
// unwrapped first.
func Decode(blob []byte) (State, error) {
	blob = bytes.TrimSpace(blob)
	if len(blob) == 0 || bytes.Equal(blob, []byte("null")) {
		return NewState(), nil
	}

	var envelope struct {
		State json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(blob, &envelope); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	if len(envelope.State) > 0 && !bytes.Equal(envelope.State, []byte("null")) {
		blob = envelope.State
	}

	var p persistedState
	if err := json.Unmarshal(blob, &p); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return migrate(p), nil
}

func migrate(p persistedState) State {
	s := State{
		ActiveSession: p.ActiveSession,
		History:       p.History,
		Settings:      models.DefaultSettings(),
		Bodyweight:    p.Bodyweight,
	}

	if p.Templates == nil {
		s.Templates = DefaultTemplates()
	} else {
		s.Templates = *p.Templates
	}
	if s.Templates == nil {
		s.Templates = []models.Template{}
	}

	if p.Settings != nil {
		if p.Settings.Theme == models.ThemeLight || p.Settings.Theme == models.ThemeDark {
			s.Settings.Theme = p.Settings.Theme
		}
		if p.Settings.Units == models.UnitsKg || p.Settings.Units == models.UnitsLb {
			s.Settings.Units = p.Settings.Units
		}
	}

	if s.History == nil {
		s.History = []models.WorkoutSession{}
	}
	for i := range s.History {
		normalizeSession(&s.History[i])
	}
	if s.ActiveSession != nil {
		normalizeSession(s.ActiveSession)
	}
	if s.Bodyweight == nil {
		s.Bodyweight = []models.BodyWeightEntry{}
	}
	return s
}

// normalizeSession defaults missing tracking modes to reps. Missing reps,
// weight, and duration already decode as blank.
func normalizeSession(w *models.WorkoutSession) {
	if w.Exercises == nil {
		w.Exercises = []models.Exercise{}
	}
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		if ex.TrackingMode == "" {
			ex.TrackingMode = models.TrackingReps
		}
		if ex.Sets == nil {
			ex.Sets = []models.Set{}
		}
	}
}

// Encode serializes the state to the persisted layout.
func Encode(s State) ([]byte, error) {
	templates := s.Templates
	if templates == nil {
		templates = []models.Template{}
	}
	settings := partialSettings(s.Settings)
	p := persistedState{
		ActiveSession: s.ActiveSession,
		History:       s.History,
		Templates:     &templates,
		Settings:      &settings,
		Bodyweight:    s.Bodyweight,
	}
	if p.History == nil {
		p.History = []models.WorkoutSession{}
	}
	if p.Bodyweight == nil {
		p.Bodyweight = []models.BodyWeightEntry{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// MigrateBlob rewrites a persisted blob in the current layout. Applying it
// to its own output returns identical bytes.
func MigrateBlob(blob []byte) ([]byte, error) {
	s, err := Decode(blob)
	if err != nil {
		return nil, err
	}
	return Encode(s)
}
