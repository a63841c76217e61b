// ABOUTME: Tests that transitions are copy-on-write and leave prior snapshots intact.
// ABOUTME: Also covers template rep-range parsing when sessions are seeded.
package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiaoGab/LIFTLOG/internal/models"
	"github.com/CiaoGab/LIFTLOG/internal/store"
)

func testEnv() store.Env {
	c := &clock{now: epoch}
	return store.Env{Now: c.Now, NewID: seqIDs()}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	env := testEnv()
	s0, err := store.StartWorkout(store.NewState(), env, "upper-a")
	require.NoError(t, err)
	ex := s0.ActiveSession.Exercises[0]
	setID := ex.Sets[0].ID

	s1 := store.UpdateSet(s0, ex.ID, setID, models.SetUpdate{Weight: qty("90")})
	s2 := store.RemoveSet(s1, ex.ID, setID)
	s3 := store.RemoveExercise(s2, ex.ID)
	s4 := store.ToggleTrackingMode(s3, s3.ActiveSession.Exercises[0].ID)
	s5 := store.DeleteTemplate(s4, "upper-a")

	assert.True(t, s0.ActiveSession.Exercises[0].Sets[0].Weight.IsBlank())
	assert.Equal(t, models.Quantity("90"), s1.ActiveSession.Exercises[0].Sets[0].Weight)
	assert.Len(t, s1.ActiveSession.Exercises[0].Sets, 4)
	assert.Len(t, s2.ActiveSession.Exercises[0].Sets, 3)
	assert.Len(t, s2.ActiveSession.Exercises, 6)
	assert.Len(t, s3.ActiveSession.Exercises, 5)
	assert.Equal(t, models.TrackingReps, s3.ActiveSession.Exercises[0].TrackingMode)
	assert.Equal(t, models.TrackingTime, s4.ActiveSession.Exercises[0].TrackingMode)
	assert.Len(t, s4.Templates, 7)
	assert.Len(t, s5.Templates, 6)
}

func TestFinishWorkoutFailureReturnsSameState(t *testing.T) {
	env := testEnv()
	s0, err := store.StartWorkout(store.NewState(), env, "")
	require.NoError(t, err)

	s1, err := store.FinishWorkout(s0, env)
	assert.ErrorIs(t, err, store.ErrNoCompletedSets)
	assert.Equal(t, s0, s1)
}

func TestTemplateRepRanges(t *testing.T) {
	tests := map[string]models.Quantity{
		"6-10":             "6",
		"20-40m or 30-60s": "20",
		"8 / 6 / 3":        "8 / 6 / 3",
		"15":               "15",
		"30-45s/side":      "30",
	}
	for reps, want := range tests {
		st := store.NewState()
		st.Templates = []models.Template{{ID: "t", Exercises: []models.TemplateExercise{{Name: "x", TargetSets: 1, TargetReps: reps}}}}

		next, err := store.StartWorkout(st, testEnv(), "t")
		require.NoError(t, err)
		assert.Equal(t, want, next.ActiveSession.Exercises[0].Sets[0].Reps, reps)
	}
}

func TestValidateFinishOrder(t *testing.T) {
	w := &models.WorkoutSession{Exercises: []models.Exercise{
		{TrackingMode: models.TrackingReps, Sets: []models.Set{{Weight: "-1", Reps: "", Completed: true}}},
	}}
	assert.ErrorIs(t, store.ValidateFinish(w), store.ErrNegativeWeight, "negative weight is reported before missing reps")
	assert.ErrorIs(t, store.ValidateFinish(nil), store.ErrNoActiveSession)
}

func TestDefaultTemplates(t *testing.T) {
	templates := store.DefaultTemplates()
	ids := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		ids = append(ids, tmpl.ID)
		assert.NotEmpty(t, tmpl.Exercises, tmpl.ID)
	}
	assert.Equal(t, []string{"upper-a", "lower-a", "conditioning", "upper-b", "lower-b", "pump-hiit", "home-lower-55"}, ids)

	home := templates[6]
	assert.False(t, *home.Exercises[0].IsWorkingDefault)

	templates[0].Name = "mutated"
	assert.Equal(t, "Upper A", store.DefaultTemplates()[0].Name)
}
