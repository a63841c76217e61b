// ABOUTME: Tests for summary, weekly volume, bodyweight, and performance analytics.
// ABOUTME: Uses a fixed reference time so cutoffs are deterministic.
package analytics_test

import (
	"testing"
	"time"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
	"github.com/CiaoGab/LIFTLOG/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func session(start time.Time, status models.Status, exercises ...models.Exercise) models.WorkoutSession {
	return models.WorkoutSession{
		ID:        start.Format(time.RFC3339),
		Name:      "Session",
		StartTime: start,
		Status:    status,
		Exercises: exercises,
	}
}

func lift(name string, sets ...models.Set) models.Exercise {
	return models.Exercise{Name: name, TrackingMode: models.TrackingReps, Sets: sets}
}

func done(weight, reps string) models.Set {
	return models.Set{Weight: models.Quantity(weight), Reps: models.Quantity(reps), Completed: true}
}

func TestComputeSummaryStats(t *testing.T) {
	timed := models.Exercise{
		Name:         "Elliptical",
		TrackingMode: models.TrackingTime,
		Sets:         []models.Set{{Completed: true, Weight: "10", Reps: "10"}},
	}
	history := []models.WorkoutSession{
		session(now.AddDate(0, 0, -1), models.StatusCompleted,
			lift("Squat", done("100", "5"), done("", "5"), models.Set{Weight: "200", Reps: "1"}),
			timed),
		session(now.AddDate(0, 0, -10), models.StatusCompleted, lift("Bench", done("80", "8"))),
		session(now.AddDate(0, 0, -40), models.StatusCompleted, lift("Bench", done("80", "8"))),
		session(now.AddDate(0, 0, -2), models.StatusActive, lift("Bench", done("80", "8"))),
	}

	stats := analytics.ComputeSummaryStats(history, 4, now)
	assert.Equal(t, 2, stats.WorkoutsCompleted)
	assert.Equal(t, 3, stats.TotalSetsCompleted)
	assert.InDelta(t, 500+640, stats.TotalVolume, 1e-9)
	assert.InDelta(t, 0.5, stats.AvgWorkoutsPerWeek, 1e-9)

	zero := analytics.ComputeSummaryStats(history, 0, now)
	assert.Equal(t, 0.0, zero.AvgWorkoutsPerWeek)
}

func TestWeekStart(t *testing.T) {
	tests := map[string]string{
		"2024-05-13": "2024-05-13", // Monday
		"2024-05-15": "2024-05-13",
		"2024-05-19": "2024-05-13", // Sunday
		"2024-05-20": "2024-05-20",
		"2024-03-03": "2024-02-26", // Sunday across month boundary
	}
	for in, want := range tests {
		assert.Equal(t, want, analytics.WeekStart(in), in)
	}
}

func TestComputeWeeklyVolumeTrend_SameWeek(t *testing.T) {
	monday := time.Date(2024, 5, 13, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 5, 19, 9, 0, 0, 0, time.UTC)
	history := []models.WorkoutSession{
		session(sunday, models.StatusCompleted, lift("Squat", done("100", "5"))),
		session(monday, models.StatusCompleted, lift("Bench", done("60", "10"), done("0", "10"))),
	}

	trend := analytics.ComputeWeeklyVolumeTrend(history, 12, sunday.Add(time.Hour))
	require.Len(t, trend, 1)
	assert.Equal(t, "2024-05-13", trend[0].WeekStartISO)
	assert.InDelta(t, 1100, trend[0].Volume, 1e-9)
}

func TestComputeWeeklyVolumeTrend_SortedAndSparse(t *testing.T) {
	history := []models.WorkoutSession{
		session(now.AddDate(0, 0, -1), models.StatusCompleted, lift("Squat", done("100", "5"))),
		session(now.AddDate(0, 0, -14), models.StatusCompleted, lift("Squat", done("90", "5"))),
		session(now.AddDate(0, 0, -7), models.StatusCompleted, lift("Squat", models.Set{Weight: "90", Reps: "5"})),
	}

	trend := analytics.ComputeWeeklyVolumeTrend(history, 12, now)
	require.Len(t, trend, 2)
	assert.Equal(t, "2024-04-29", trend[0].WeekStartISO)
	assert.Equal(t, "2024-05-13", trend[1].WeekStartISO)
}

func TestComputeBodyweightTrend(t *testing.T) {
	entries := []models.BodyWeightEntry{
		{ID: "c", DateISO: "2024-05-10", Weight: 80.1},
		{ID: "a", DateISO: "2023-01-01", Weight: 85},
		{ID: "b", DateISO: "2024-04-17", Weight: 81},
	}

	all := analytics.ComputeBodyweightTrend(entries, 0, now)
	require.Len(t, all, 3)
	assert.Equal(t, "2023-01-01", all[0].DateISO)
	assert.Equal(t, "2024-05-10", all[2].DateISO)

	recent := analytics.ComputeBodyweightTrend(entries, 4, now)
	require.Len(t, recent, 2)
	assert.Equal(t, "2024-04-17", recent[0].DateISO)
	assert.Equal(t, 80.1, recent[1].Weight)
}

func TestComputeExercisePerformance(t *testing.T) {
	day := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	history := []models.WorkoutSession{
		session(day, models.StatusCompleted, lift("Bench Press", done("80", "5"), done("85", "3"))),
		session(day.Add(6*time.Hour), models.StatusCompleted, lift("bench press", done("82.5", "5"))),
		session(day.AddDate(0, 0, -3), models.StatusCompleted, lift("BENCH PRESS", done("75", "8"), done("90", "0"))),
		session(day.AddDate(0, 0, 2), models.StatusActive, lift("Bench Press", done("100", "1"))),
		session(day.AddDate(0, 0, 3), models.StatusCompleted, lift("Squat", done("120", "5"))),
	}

	points := analytics.ComputeExercisePerformance(history, "Bench press")
	require.Len(t, points, 2)
	assert.Equal(t, analytics.PerformancePoint{DateISO: "2024-04-28", TopSetWeight: 75}, points[0])
	assert.Equal(t, analytics.PerformancePoint{DateISO: "2024-05-01", TopSetWeight: 85}, points[1])
}

func TestUniqueExerciseNames(t *testing.T) {
	timed := models.Exercise{Name: "Rower", TrackingMode: models.TrackingTime}
	history := []models.WorkoutSession{
		session(now, models.StatusCompleted, lift("Squat"), lift("Bench"), timed),
		session(now, models.StatusCompleted, lift("Squat"), lift("Deadlift")),
		session(now, models.StatusActive, lift("Curl")),
	}
	assert.Equal(t, []string{"Bench", "Deadlift", "Squat"}, analytics.UniqueExerciseNames(history))
}

func TestAnalyticsDoNotMutateInput(t *testing.T) {
	history := []models.WorkoutSession{
		session(now.AddDate(0, 0, -1), models.StatusCompleted, lift("Squat", done("100", "5"))),
	}
	before := history[0].Exercises[0].Sets[0]
	analytics.ComputeSummaryStats(history, 4, now)
	analytics.ComputeWeeklyVolumeTrend(history, 4, now)
	analytics.PersonalRecords(history)
	assert.Equal(t, before, history[0].Exercises[0].Sets[0])
}
