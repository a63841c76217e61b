// ABOUTME: Personal record derivation across the full workout history.
// ABOUTME: A record is the heaviest completed set with positive reps per exercise name.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

// PersonalRecord is the heaviest valid set logged for one exercise.
type PersonalRecord struct {
	Weight float64   `json:"weight"`
	Reps   float64   `json:"reps"`
	Date   time.Time `json:"date"`
}

// PersonalRecords keys records by lowercased exercise name. Time-tracked
// exercises never produce records. History is walked
// in order and a record is replaced only by a strictly greater weight.
func PersonalRecords(history []models.WorkoutSession) map[string]PersonalRecord {
	prs := make(map[string]PersonalRecord)
	for i := range history {
		s := &history[i]
		for _, ex := range s.Exercises {
			if !ex.IsRepTracked() {
				continue
			}
			key := strings.ToLower(ex.Name)
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				w, r := set.Weight.Number(), set.Reps.Number()
				if w <= 0 || r <= 0 {
					continue
				}
				if cur, ok := prs[key]; !ok || w > cur.Weight {
					prs[key] = PersonalRecord{Weight: w, Reps: r, Date: s.StartTime}
				}
			}
		}
	}
	return prs
}

// NamedRecord pairs a record with its exercise key for ordered display.
type NamedRecord struct {
	Exercise string `json:"exercise"`
	PersonalRecord
}

// SortedRecords returns records ordered by exercise key.
func SortedRecords(prs map[string]PersonalRecord) []NamedRecord {
	out := make([]NamedRecord, 0, len(prs))
	for k, v := range prs {
		out = append(out, NamedRecord{Exercise: k, PersonalRecord: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Exercise < out[j].Exercise })
	return out
}
