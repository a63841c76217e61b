// ABOUTME: Encodes workout history as three normalized CSV row-sets.
// ABOUTME: workouts.csv, exercises.csv, and sets.csv share ids for joining.
package export

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

// ErrNothingToExport is returned when there are no sessions to export.
var ErrNothingToExport = errors.New("no workouts to export")

// File names for the CSV bundle.
const (
	WorkoutsFile  = "workouts.csv"
	ExercisesFile = "exercises.csv"
	SetsFile      = "sets.csv"
)

var (
	WorkoutsHeader  = []string{"workout_id", "name", "date", "start_time", "end_time", "duration_min", "exercise_count", "total_sets", "total_volume"}
	ExercisesHeader = []string{"exercise_id", "workout_id", "workout_date", "name", "muscle_group", "set_count", "completed_sets", "volume", "notes"}
	SetsHeader      = []string{"set_id", "exercise_id", "workout_id", "workout_date", "exercise_name", "set_number", "weight", "reps", "duration_seconds", "rpe", "completed"}
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func dateOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func timestamp(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeField quotes a field only when it holds a comma, a double quote, or a
// newline. Inner quotes are doubled.
func escapeField(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// encode joins the header and rows with "\n" and no trailing newline.
func encode(header []string, rows [][]string) ([]byte, error) {
	lines := make([]string, 0, len(rows)+1)
	for _, row := range append([][]string{header}, rows...) {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = escapeField(v)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// WorkoutsCSV emits one row per session.
func WorkoutsCSV(history []models.WorkoutSession) ([]byte, error) {
	rows := make([][]string, 0, len(history))
	for i := range history {
		s := &history[i]
		end := ""
		if s.EndTime != nil {
			end = timestamp(*s.EndTime)
		}
		minutes := int64(math.Round(s.Duration().Minutes()))
		rows = append(rows, []string{
			s.ID,
			s.Name,
			dateOf(s.StartTime),
			timestamp(s.StartTime),
			end,
			strconv.FormatInt(minutes, 10),
			strconv.Itoa(len(s.Exercises)),
			strconv.Itoa(s.CompletedSets()),
			number(s.Volume()),
		})
	}
	return encode(WorkoutsHeader, rows)
}

// ExercisesCSV emits one row per exercise instance across all sessions.
func ExercisesCSV(history []models.WorkoutSession) ([]byte, error) {
	var rows [][]string
	for i := range history {
		s := &history[i]
		date := dateOf(s.StartTime)
		for j := range s.Exercises {
			ex := &s.Exercises[j]
			rows = append(rows, []string{
				ex.ID,
				s.ID,
				date,
				ex.Name,
				ex.MuscleGroup,
				strconv.Itoa(len(ex.Sets)),
				strconv.Itoa(ex.CompletedSets()),
				number(ex.Volume()),
				ex.Notes,
			})
		}
	}
	return encode(ExercisesHeader, rows)
}

// SetsCSV emits one row per set; set_number is the 1-based position within its exercise.
func SetsCSV(history []models.WorkoutSession) ([]byte, error) {
	var rows [][]string
	for i := range history {
		s := &history[i]
		date := dateOf(s.StartTime)
		for j := range s.Exercises {
			ex := &s.Exercises[j]
			for k, set := range ex.Sets {
				dur := ""
				if set.DurationSeconds != nil {
					dur = strconv.Itoa(*set.DurationSeconds)
				}
				rows = append(rows, []string{
					set.ID,
					ex.ID,
					s.ID,
					date,
					ex.Name,
					strconv.Itoa(k + 1),
					set.Weight.String(),
					set.Reps.String(),
					dur,
					set.RPE.String(),
					strconv.FormatBool(set.Completed),
				})
			}
		}
	}
	return encode(SetsHeader, rows)
}

// Bundle holds the three encoded CSV payloads.
type Bundle struct {
	Workouts  []byte
	Exercises []byte
	Sets      []byte
}

// All encodes every row-set. It returns ErrNothingToExport for empty history
// so that no empty files are produced.
func All(history []models.WorkoutSession) (*Bundle, error) {
	if len(history) == 0 {
		return nil, ErrNothingToExport
	}
	var b Bundle
	var err error
	if b.Workouts, err = WorkoutsCSV(history); err != nil {
		return nil, fmt.Errorf("encode workouts: %w", err)
	}
	if b.Exercises, err = ExercisesCSV(history); err != nil {
		return nil, fmt.Errorf("encode exercises: %w", err)
	}
	if b.Sets, err = SetsCSV(history); err != nil {
		return nil, fmt.Errorf("encode sets: %w", err)
	}
	return &b, nil
}

// WriteDir writes the bundle into dir and returns the written paths.
func (b *Bundle) WriteDir(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	files := []struct {
		name string
		data []byte
	}{
		{WorkoutsFile, b.Workouts},
		{ExercisesFile, b.Exercises},
		{SetsFile, b.Sets},
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		p := filepath.Join(dir, f.name)
		if err := os.WriteFile(p, f.data, 0600); err != nil {
			return paths, fmt.Errorf("write %s: %w", f.name, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// FilterByDateRange keeps sessions starting on or after start and no later
// than the final millisecond of end's calendar day. Nil bounds are open.
func FilterByDateRange(history []models.WorkoutSession, start, end *time.Time) []models.WorkoutSession {
	var endOfDay time.Time
	if end != nil {
		y, m, d := end.Date()
		endOfDay = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), end.Location())
	}
	out := make([]models.WorkoutSession, 0, len(history))
	for _, s := range history {
		if start != nil && s.StartTime.Before(*start) {
			continue
		}
		if end != nil && s.StartTime.After(endOfDay) {
			continue
		}
		out = append(out, s)
	}
	return out
}
