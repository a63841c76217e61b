// ABOUTME: Data migration between liftlog storage backends.
// ABOUTME: Copies the state blob from source to destination and reports what moved.

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDestinationNotEmpty is returned when the destination already holds state.
var ErrDestinationNotEmpty = errors.New("destination already has data")

// ErrSourceEmpty is returned when there is nothing to migrate.
var ErrSourceEmpty = errors.New("source has no data")

// MigrateSummary holds counts of migrated records.
type MigrateSummary struct {
	Bytes      int
	Workouts   int
	Templates  int
	Bodyweight int
	Active     bool
}

// MigrateData copies the state blob from src to dst. The destination must be
// empty unless force is set.
func MigrateData(src, dst Repository, force bool) (*MigrateSummary, error) {
	blob, err := src.LoadState()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	if len(blob) == 0 {
		return nil, ErrSourceEmpty
	}

	if !force {
		existing, err := dst.LoadState()
		if err != nil {
			return nil, fmt.Errorf("read destination: %w", err)
		}
		if len(existing) > 0 {
			return nil, ErrDestinationNotEmpty
		}
	}

	summary, err := summarize(blob)
	if err != nil {
		return nil, err
	}

	if err := dst.SaveState(blob); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}
	return summary, nil
}

func summarize(blob []byte) (*MigrateSummary, error) {
	var counts struct {
		ActiveSession json.RawMessage   `json:"activeSession"`
		History       []json.RawMessage `json:"history"`
		Templates     []json.RawMessage `json:"templates"`
		Bodyweight    []json.RawMessage `json:"bodyweight"`
	}
	if err := json.Unmarshal(blob, &counts); err != nil {
		return nil, fmt.Errorf("inspect source state: %w", err)
	}
	return &MigrateSummary{
		Bytes:      len(blob),
		Workouts:   len(counts.History),
		Templates:  len(counts.Templates),
		Bodyweight: len(counts.Bodyweight),
		Active:     len(counts.ActiveSession) > 0 && string(counts.ActiveSession) != "null",
	}, nil
}
