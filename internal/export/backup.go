// ABOUTME: Full-fidelity JSON backup plus readable YAML and Markdown summaries.
// ABOUTME: JSON backups can be imported back into the store.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CiaoGab/LIFTLOG/internal/duration"
	"github.com/CiaoGab/LIFTLOG/internal/models"
)

// BackupVersion is the current backup format version.
const BackupVersion = "1.0"

// Backup is the full export format for liftlog data.
type Backup struct {
	Version    string                   `json:"version"`
	ExportedAt time.Time                `json:"exported_at"`
	Tool       string                   `json:"tool"`
	Settings   models.Settings          `json:"settings"`
	History    []models.WorkoutSession  `json:"history"`
	Templates  []models.Template        `json:"templates"`
	Bodyweight []models.BodyWeightEntry `json:"bodyweight"`
}

// NewBackup snapshots the given collections. The active session is never
// included; only finished work is backed up.
func NewBackup(history []models.WorkoutSession, templates []models.Template, bodyweight []models.BodyWeightEntry, settings models.Settings) *Backup {
	b := &Backup{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC(),
		Tool:       "liftlog",
		Settings:   settings,
		History:    history,
		Templates:  templates,
		Bodyweight: bodyweight,
	}
	if b.History == nil {
		b.History = []models.WorkoutSession{}
	}
	if b.Templates == nil {
		b.Templates = []models.Template{}
	}
	if b.Bodyweight == nil {
		b.Bodyweight = []models.BodyWeightEntry{}
	}
	return b
}

// ParseBackup decodes a JSON backup.
func ParseBackup(data []byte) (*Backup, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal backup: %w", err)
	}
	if b.Version == "" {
		return nil, fmt.Errorf("unmarshal backup: missing version")
	}
	return &b, nil
}

// JSON encodes the backup with indentation.
func (b *Backup) JSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// YAML renders a readable summary of the backup. Durations are shown as m:ss.
func (b *Backup) YAML() ([]byte, error) {
	out := yamlBackup{
		Version:    b.Version,
		ExportedAt: b.ExportedAt.Format(time.RFC3339),
		Tool:       b.Tool,
		Units:      string(b.Settings.Units),
		Workouts:   make([]yamlWorkout, 0, len(b.History)),
	}

	for _, s := range b.History {
		yw := yamlWorkout{
			ID:        shortID(s.ID),
			Name:      s.Name,
			StartedAt: s.StartTime.Format(time.RFC3339),
			Volume:    s.Volume(),
		}
		if s.EndTime != nil {
			yw.DurationMinutes = int(s.Duration().Round(time.Minute).Minutes())
		}
		for _, ex := range s.Exercises {
			ye := yamlExercise{Name: ex.Name, MuscleGroup: ex.MuscleGroup, Notes: ex.Notes}
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				if ex.IsRepTracked() {
					ye.Sets = append(ye.Sets, fmt.Sprintf("%s x %s", orDash(set.Weight.String()), orDash(set.Reps.String())))
				} else {
					ye.Sets = append(ye.Sets, orDash(duration.Format(set.DurationSeconds)))
				}
			}
			yw.Exercises = append(yw.Exercises, ye)
		}
		out.Workouts = append(out.Workouts, yw)
	}

	for _, t := range b.Templates {
		out.Templates = append(out.Templates, yamlTemplate{
			ID:        t.ID,
			Name:      t.Name,
			Exercises: len(t.Exercises),
		})
	}

	for _, e := range b.Bodyweight {
		out.Bodyweight = append(out.Bodyweight, yamlBodyweight{
			Date:   e.DateISO,
			Weight: e.Weight,
			Unit:   string(e.Unit),
			Note:   e.Note,
		})
	}

	return yaml.Marshal(out)
}

type yamlBackup struct {
	Version    string           `yaml:"version"`
	ExportedAt string           `yaml:"exported_at"`
	Tool       string           `yaml:"tool"`
	Units      string           `yaml:"units"`
	Workouts   []yamlWorkout    `yaml:"workouts"`
	Templates  []yamlTemplate   `yaml:"templates,omitempty"`
	Bodyweight []yamlBodyweight `yaml:"bodyweight,omitempty"`
}

type yamlWorkout struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	StartedAt       string         `yaml:"started_at"`
	DurationMinutes int            `yaml:"duration_minutes,omitempty"`
	Volume          float64        `yaml:"volume"`
	Exercises       []yamlExercise `yaml:"exercises,omitempty"`
}

type yamlExercise struct {
	Name        string   `yaml:"name"`
	MuscleGroup string   `yaml:"muscle_group,omitempty"`
	Sets        []string `yaml:"sets,omitempty"`
	Notes       string   `yaml:"notes,omitempty"`
}

type yamlTemplate struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Exercises int    `yaml:"exercises"`
}

type yamlBodyweight struct {
	Date   string  `yaml:"date"`
	Weight float64 `yaml:"weight"`
	Unit   string  `yaml:"unit"`
	Note   string  `yaml:"note,omitempty"`
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Markdown renders history as a table, newest first, optionally limited to
// sessions starting at or after since.
func Markdown(history []models.WorkoutSession, since *time.Time, units models.Units) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Liftlog Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	sb.WriteString("| Date | Workout | Duration | Sets | Volume |\n")
	sb.WriteString("|------|---------|----------|------|--------|\n")

	for _, s := range history {
		if since != nil && s.StartTime.Before(*since) {
			continue
		}
		dur := ""
		if s.EndTime != nil {
			dur = fmt.Sprintf("%d min", int(s.Duration().Round(time.Minute).Minutes()))
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s %s |\n",
			s.StartTime.Local().Format("2006-01-02 15:04"),
			strings.ReplaceAll(s.Name, "|", "/"),
			dur, s.CompletedSets(), number(s.Volume()), units))
	}
	return sb.String()
}
