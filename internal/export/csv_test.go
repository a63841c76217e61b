// ABOUTME: Tests for the CSV export encoder.
// ABOUTME: Parses generated output back with encoding/csv to check columns.
package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CiaoGab/LIFTLOG/internal/export"
	"github.com/CiaoGab/LIFTLOG/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC)

func sampleHistory() []models.WorkoutSession {
	end := start.Add(52*time.Minute + 40*time.Second)
	dur := 600
	return []models.WorkoutSession{{
		ID:        "w1",
		Name:      "Upper A",
		StartTime: start,
		EndTime:   &end,
		Status:    models.StatusCompleted,
		Exercises: []models.Exercise{
			{
				ID:           "e1",
				Name:         "Bench Press",
				MuscleGroup:  "Chest",
				TrackingMode: models.TrackingReps,
				Notes:        `felt "heavy", grind`,
				Sets: []models.Set{
					{ID: "s1", Weight: "100", Reps: "10", Completed: true, RPE: "8"},
					{ID: "s2", Weight: "110", Reps: "8", Completed: true},
				},
			},
			{
				ID:           "e2",
				Name:         "Elliptical",
				MuscleGroup:  "Cardio",
				TrackingMode: models.TrackingTime,
				Sets: []models.Set{
					{ID: "s3", DurationSeconds: &dur, Completed: true},
				},
			},
		},
	}}
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWorkoutsCSV(t *testing.T) {
	data, err := export.WorkoutsCSV(sampleHistory())
	require.NoError(t, err)

	records := readCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, export.WorkoutsHeader, records[0])

	row := records[1]
	assert.Equal(t, "w1", row[0])
	assert.Equal(t, "2024-06-03", row[2])
	assert.Equal(t, "2024-06-03T18:00:00.000Z", row[3])
	assert.Equal(t, "2024-06-03T18:52:40.000Z", row[4])
	assert.Equal(t, "53", row[5])
	assert.Equal(t, "2", row[6])
	assert.Equal(t, "3", row[7])
	assert.Equal(t, "1880", row[8])
}

func TestWorkoutsCSV_Unfinished(t *testing.T) {
	h := sampleHistory()
	h[0].EndTime = nil
	data, err := export.WorkoutsCSV(h)
	require.NoError(t, err)

	row := readCSV(t, data)[1]
	assert.Equal(t, "", row[4])
	assert.Equal(t, "0", row[5])
}

func TestExercisesCSV(t *testing.T) {
	data, err := export.ExercisesCSV(sampleHistory())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"felt ""heavy"", grind"`)

	records := readCSV(t, data)
	require.Len(t, records, 3)
	assert.Equal(t, export.ExercisesHeader, records[0])
	assert.Equal(t, []string{"e1", "w1", "2024-06-03", "Bench Press", "Chest", "2", "2", "1880", `felt "heavy", grind`}, records[1])
	assert.Equal(t, "0", records[2][7])
}

func TestSetsCSV(t *testing.T) {
	data, err := export.SetsCSV(sampleHistory())
	require.NoError(t, err)

	records := readCSV(t, data)
	require.Len(t, records, 4)
	assert.Equal(t, export.SetsHeader, records[0])
	assert.Equal(t, []string{"s1", "e1", "w1", "2024-06-03", "Bench Press", "1", "100", "10", "", "8", "true"}, records[1])
	assert.Equal(t, "2", records[2][5])
	assert.Equal(t, "600", records[3][8])
	assert.Equal(t, "1", records[3][5])
}

func TestSetsCSV_TwoCompletedSets(t *testing.T) {
	h := sampleHistory()
	h[0].Exercises = h[0].Exercises[:1]

	data, err := export.SetsCSV(h)
	require.NoError(t, err)
	assert.Len(t, readCSV(t, data), 3)

	workouts, err := export.WorkoutsCSV(h)
	require.NoError(t, err)
	assert.Equal(t, "1880", readCSV(t, workouts)[1][8])
}

func TestHeaderOnlyForEmptyInput(t *testing.T) {
	data, err := export.SetsCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(export.SetsHeader, ","), string(data))
}

func TestCSVFieldEncoding(t *testing.T) {
	h := sampleHistory()
	h[0].Exercises = h[0].Exercises[:1]
	h[0].Exercises[0].Sets = nil

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"plain", "Leg Day", "Leg Day"},
		{"leading space", " Leg Day", " Leg Day"},
		{"trailing tab", "Legs\t", "Legs\t"},
		{"comma", "Push, Pull", `"Push, Pull"`},
		{"quote", `The "big" one`, `"The ""big"" one"`},
		{"newline", "line one\nline two", "\"line one\nline two\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h[0].Exercises[0].Notes = tt.field
			data, err := export.ExercisesCSV(h)
			require.NoError(t, err)

			want := strings.Join(export.ExercisesHeader, ",") + "\n" +
				"e1,w1,2024-06-03,Bench Press,Chest,0,0,0," + tt.want
			assert.Equal(t, want, string(data))
		})
	}
}

func TestWorkoutsCSVExactBytes(t *testing.T) {
	h := sampleHistory()
	h[0].Name = " Leg Day"
	data, err := export.WorkoutsCSV(h)
	require.NoError(t, err)

	want := strings.Join(export.WorkoutsHeader, ",") + "\n" +
		"w1, Leg Day,2024-06-03,2024-06-03T18:00:00.000Z,2024-06-03T18:52:40.000Z,53,2,3,1880"
	assert.Equal(t, want, string(data))
	assert.False(t, strings.HasSuffix(string(data), "\n"))
}

func TestAll_EmptyHistory(t *testing.T) {
	_, err := export.All(nil)
	assert.ErrorIs(t, err, export.ErrNothingToExport)
}

func TestBundleWriteDir(t *testing.T) {
	b, err := export.All(sampleHistory())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := b.WriteDir(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for _, name := range []string{export.WorkoutsFile, export.ExercisesFile, export.SetsFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size())
	}
}

func TestFilterByDateRange(t *testing.T) {
	day := func(d, h int) models.WorkoutSession {
		return models.WorkoutSession{ID: "x", StartTime: time.Date(2024, 6, d, h, 0, 0, 0, time.UTC)}
	}
	history := []models.WorkoutSession{day(1, 9), day(3, 23), day(4, 0), day(10, 12)}

	from := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	got := export.FilterByDateRange(history, &from, &until)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].StartTime.Day())

	assert.Len(t, export.FilterByDateRange(history, nil, nil), 4)
	assert.Len(t, export.FilterByDateRange(history, &from, nil), 3)
	assert.Len(t, export.FilterByDateRange(history, nil, &until), 2)
}
