// ABOUTME: Derived training analytics computed from workout history and bodyweight logs.
// ABOUTME: All functions are pure; callers pass the reference time explicitly.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

const (
	week    = 7 * 24 * time.Hour
	dateISO = "2006-01-02"
)

// DateISO returns the UTC calendar date of t as YYYY-MM-DD.
func DateISO(t time.Time) string {
	return t.UTC().Format(dateISO)
}

// WeekStart returns the Monday that begins the calendar week containing dateISO.
func WeekStart(date string) string {
	d, err := time.Parse(dateISO, date)
	if err != nil {
		return date
	}
	offset := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDate(0, 0, -offset).Format(dateISO)
}

func cutoff(now time.Time, weeks int) time.Time {
	return now.Add(-time.Duration(weeks) * week)
}

// recentCompleted returns completed sessions that started on or after the cutoff.
func recentCompleted(history []models.WorkoutSession, weeks int, now time.Time) []*models.WorkoutSession {
	from := cutoff(now, weeks)
	var out []*models.WorkoutSession
	for i := range history {
		s := &history[i]
		if s.IsCompleted() && !s.StartTime.Before(from) {
			out = append(out, s)
		}
	}
	return out
}

// SummaryStats aggregates recent training.
type SummaryStats struct {
	WorkoutsCompleted  int     `json:"workoutsCompleted"`
	TotalSetsCompleted int     `json:"totalSetsCompleted"`
	TotalVolume        float64 `json:"totalVolume"`
	AvgWorkoutsPerWeek float64 `json:"avgWorkoutsPerWeek"`
}

// ComputeSummaryStats summarizes completed sessions from the last weeks weeks.
// Set counts include every completed set of a rep-tracked exercise; volume only
// includes sets with positive weight and reps.
func ComputeSummaryStats(history []models.WorkoutSession, weeks int, now time.Time) SummaryStats {
	var stats SummaryStats
	recent := recentCompleted(history, weeks, now)
	for _, s := range recent {
		for i := range s.Exercises {
			ex := &s.Exercises[i]
			if !ex.IsRepTracked() {
				continue
			}
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				stats.TotalSetsCompleted++
				if v, ok := ex.SetVolume(set); ok {
					stats.TotalVolume += v
				}
			}
		}
	}
	stats.WorkoutsCompleted = len(recent)
	if weeks > 0 {
		stats.AvgWorkoutsPerWeek = float64(stats.WorkoutsCompleted) / float64(weeks)
	}
	return stats
}

// WeeklyVolume is the volume lifted in one Monday-aligned week.
type WeeklyVolume struct {
	WeekStartISO string  `json:"weekStartISO"`
	Volume       float64 `json:"volume"`
}

// ComputeWeeklyVolumeTrend buckets recent volume by week start, ascending.
// Weeks without contributing sets are omitted.
func ComputeWeeklyVolumeTrend(history []models.WorkoutSession, weeks int, now time.Time) []WeeklyVolume {
	buckets := make(map[string]float64)
	for _, s := range recentCompleted(history, weeks, now) {
		key := WeekStart(DateISO(s.StartTime))
		for i := range s.Exercises {
			ex := &s.Exercises[i]
			for _, set := range ex.Sets {
				if v, ok := ex.SetVolume(set); ok {
					buckets[key] += v
				}
			}
		}
	}

	out := make([]WeeklyVolume, 0, len(buckets))
	for k, v := range buckets {
		out = append(out, WeeklyVolume{WeekStartISO: k, Volume: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStartISO < out[j].WeekStartISO })
	return out
}

// BodyweightPoint is one bodyweight sample.
type BodyweightPoint struct {
	DateISO string  `json:"dateISO"`
	Weight  float64 `json:"weight"`
}

// ComputeBodyweightTrend returns entries on or after the cutoff date, ascending.
// weeks == 0 returns every entry.
func ComputeBodyweightTrend(entries []models.BodyWeightEntry, weeks int, now time.Time) []BodyweightPoint {
	from := ""
	if weeks != 0 {
		from = DateISO(cutoff(now, weeks))
	}
	out := make([]BodyweightPoint, 0, len(entries))
	for _, e := range entries {
		if from != "" && e.DateISO < from {
			continue
		}
		out = append(out, BodyweightPoint{DateISO: e.DateISO, Weight: e.Weight})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateISO < out[j].DateISO })
	return out
}

// PerformancePoint is the heaviest valid set for an exercise on one date.
type PerformancePoint struct {
	DateISO      string  `json:"dateISO"`
	TopSetWeight float64 `json:"topSetWeight"`
}

// ComputeExercisePerformance tracks the top set weight per date for a named
// exercise (case-insensitive) across completed sessions, ascending by date.
func ComputeExercisePerformance(history []models.WorkoutSession, exerciseName string) []PerformancePoint {
	target := strings.ToLower(exerciseName)
	byDate := make(map[string]float64)
	for i := range history {
		s := &history[i]
		if !s.IsCompleted() {
			continue
		}
		date := DateISO(s.StartTime)
		for j := range s.Exercises {
			ex := &s.Exercises[j]
			if strings.ToLower(ex.Name) != target || !ex.IsRepTracked() {
				continue
			}
			for _, set := range ex.Sets {
				if _, ok := ex.SetVolume(set); !ok {
					continue
				}
				if w := set.Weight.Number(); w > byDate[date] {
					byDate[date] = w
				}
			}
		}
	}

	out := make([]PerformancePoint, 0, len(byDate))
	for d, w := range byDate {
		out = append(out, PerformancePoint{DateISO: d, TopSetWeight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateISO < out[j].DateISO })
	return out
}

// UniqueExerciseNames lists distinct rep-tracked exercise names from completed
// sessions, sorted.
func UniqueExerciseNames(history []models.WorkoutSession) []string {
	seen := make(map[string]struct{})
	for i := range history {
		s := &history[i]
		if !s.IsCompleted() {
			continue
		}
		for _, ex := range s.Exercises {
			if ex.TrackingMode == models.TrackingReps {
				seen[ex.Name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
