// ABOUTME: Built-in workout templates seeded when no template list has been persisted.
// ABOUTME: Template and exercise ids are stable so reseeding is deterministic.
package store

import (
	"fmt"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

type prescription struct {
	name    string
	group   string
	sets    int
	reps    string
	rest    int
	working bool
}

func buildTemplate(id, name, description string, rx []prescription) models.Template {
	t := models.Template{
		ID:          id,
		Name:        name,
		Description: description,
		Exercises:   make([]models.TemplateExercise, 0, len(rx)),
	}
	for i, p := range rx {
		rest := p.rest
		working := p.working
		t.Exercises = append(t.Exercises, models.TemplateExercise{
			ID:               fmt.Sprintf("%s-%02d", id, i+1),
			Name:             p.name,
			MuscleGroup:      p.group,
			TargetSets:       p.sets,
			TargetReps:       p.reps,
			RestSeconds:      &rest,
			IsWorkingDefault: &working,
		})
	}
	return t
}

// DefaultTemplates returns a fresh copy of the built-in templates.
func DefaultTemplates() []models.Template {
	return []models.Template{
		buildTemplate("upper-a", "Upper A", "Incline push + vertical pull + row. Low shoulder irritation volume.", []prescription{
			{"Plate-Loaded Incline Chest Press", "Chest", 4, "6-10", 120, true},
			{"Lat Pulldown (Neutral or Supinated)", "Back", 4, "8-12", 90, true},
			{"Chest-Supported Row (Machine or DB)", "Back", 3, "8-12", 90, true},
			{"Cable Lateral Raise (Lean-away optional)", "Shoulders", 2, "12-20", 60, true},
			{"Cable Triceps Pressdown (Rope)", "Triceps", 3, "10-15", 60, true},
			{"Cable Curl (Straight or Rope)", "Biceps", 3, "10-15", 60, true},
		}),
		buildTemplate("lower-a", "Lower A", "Glute/hinge dominant + tib/calf + optional sled (knee-friendly).", []prescription{
			{"Hip Thrust (Barbell or Machine)", "Legs", 4, "8-12", 120, true},
			{"Romanian Deadlift (DB or Barbell)", "Legs", 4, "6-10", 120, true},
			{"Hamstring Curl (Seated/Lying) OR BOSU Ham Curl", "Legs", 3, "10-15", 75, true},
			{"Standing Calf Raise (Machine or DB)", "Legs", 4, "10-15", 60, true},
			{"Wall Tib Raises (or Tib Bar)", "Legs", 3, "15-25", 45, true},
			{"Sled Drags / Prowler Push (or Incline Treadmill Walk)", "Cardio", 6, "20-40m or 30-60s", 60, true},
		}),
		buildTemplate("conditioning", "Conditioning", "Zone 2 elliptical + core/mobility. Keep it easy/moderate.", []prescription{
			{"Elliptical Zone 2", "Cardio", 1, "30-45 min", 0, true},
			{"Dead Bug", "Core", 3, "8-12/side", 45, true},
			{"Pallof Press (Cable)", "Core", 3, "10-12/side", 45, true},
			{"Side Plank", "Core", 2, "30-45s/side", 45, true},
			{"Hip Flexor + Calf Mobility (quick flow)", "Other", 1, "5-8 min", 0, true},
		}),
		buildTemplate("upper-b", "Upper B", "Flat push + row emphasis + rear delts. No extra shoulder pressing.", []prescription{
			{"Plate-Loaded Chest Press (Flat/Neutral Grip)", "Chest", 4, "6-10", 120, true},
			{"Seated Cable Row (Neutral)", "Back", 4, "8-12", 90, true},
			{"Assisted Pull-Up OR Pulldown (Wide/Neutral)", "Back", 3, "6-10", 120, true},
			{"Cable Rear Delt Fly (Reverse Fly)", "Shoulders", 3, "12-20", 60, true},
			{"Incline DB Curl (or Cable Curl)", "Biceps", 3, "10-15", 60, true},
			{"Overhead Triceps Extension (Cable, light)", "Triceps", 2, "12-15", 60, true},
		}),
		buildTemplate("lower-b", "Lower B", "Hinge + controlled quad pattern (pain-free range) + calves/tibs.", []prescription{
			{"Cable Pull-Through", "Legs", 4, "10-15", 90, true},
			{"Leg Press (Feet High, Pain-Free ROM)", "Legs", 3, "8-12", 120, true},
			{"Single-Leg RDL (DB, supported)", "Legs", 3, "8-10/side", 90, true},
			{"Hamstring Curl (Seated/Lying) OR BOSU Ham Curl", "Legs", 3, "10-15", 75, true},
			{"Standing Calf Raise (Machine or DB)", "Legs", 4, "10-15", 60, true},
			{"Wall Tib Raises (or Tib Bar)", "Legs", 3, "15-25", 45, true},
		}),
		buildTemplate("pump-hiit", "Pump + HIIT", "Short pump work + elliptical intervals. Keep joint-friendly.", []prescription{
			{"Cable Row (Pump)", "Back", 3, "12-15", 45, true},
			{"Cable Chest Fly (Low-to-High or Pec Deck)", "Chest", 3, "12-15", 45, true},
			{"Rope Triceps Pressdown (Pump)", "Triceps", 3, "12-20", 45, true},
			{"Cable Curl (Pump)", "Biceps", 3, "12-20", 45, true},
			{"Leg Curl (Pump) OR Glute Bridge (Machine/DB)", "Legs", 3, "12-20", 45, true},
			{"Calf Raise (Pump)", "Legs", 3, "12-20", 45, true},
			{"Elliptical HIIT", "Cardio", 1, "10 rounds: 20s hard / 100s easy", 0, true},
		}),
		buildTemplate("home-lower-55", "Home Lower (55s)", "Home session using 55 lb DBs + BOSU ham curls + warm-up first.", []prescription{
			{"Elliptical Warm-up", "Cardio", 1, "3 min", 0, false},
			{"Wall Sit", "Legs", 2, "30-45s", 45, false},
			{"Glute Bridge (Bodyweight)", "Legs", 2, "10", 30, false},
			{"Bodyweight Hip Hinge", "Legs", 2, "10", 30, false},
			{"Single-Leg RDL Reach (Bodyweight)", "Legs", 1, "6/side", 30, false},
			{"Calf Raises (Bodyweight)", "Legs", 1, "15", 30, false},
			{"Wall Tib Raises (Warm-up)", "Legs", 1, "15-20", 30, false},
			{"DB RDL Ramp-up Sets", "Legs", 3, "8 / 6 / 3", 45, false},
			{"DB Romanian Deadlift (2x55)", "Legs", 4, "8-12", 120, true},
			{"DB Glute Bridge", "Legs", 4, "12-20", 90, true},
			{"BOSU Hamstring Curls", "Legs", 3, "10-15", 75, true},
			{"Standing DB Calf Raise (2x55 or 1x55)", "Legs", 4, "10-15", 60, true},
			{"Wall Tib Raises", "Legs", 3, "15-25", 45, true},
			{"Elliptical Zone 2 (Optional)", "Cardio", 1, "10-20 min", 0, true},
		}),
	}
}
