// ABOUTME: Tests for decoding and migrating persisted state blobs.
// ABOUTME: Older layouts must load cleanly and migration must be idempotent.
package store_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiaoGab/LIFTLOG/internal/models"
	"github.com/CiaoGab/LIFTLOG/internal/store"
)

const legacyBlob = `{
  "activeSession": {
    "id": "act", "name": "Empty Workout", "startTime": 1719855000000, "status": "active",
    "exercises": [{"id": "ae", "name": "Curl", "muscleGroup": "Biceps",
      "sets": [{"id": "as1", "completed": false}]}]
  },
  "history": [
    {"id": "h1", "name": "Upper A", "startTime": 1719768600000, "endTime": 1719772200000, "status": "completed",
     "exercises": [{"id": "he", "name": "Bench", "muscleGroup": "Chest",
       "sets": [{"id": "hs1", "weight": 100, "reps": 5, "completed": true},
                {"id": "hs2", "weight": "", "completed": false}]}]}
  ],
  "settings": {"theme": "light", "units": "lb"}
}`

func TestDecode_LegacyBlob(t *testing.T) {
	st, err := store.Decode([]byte(legacyBlob))
	require.NoError(t, err)

	assert.Len(t, st.Templates, len(store.DefaultTemplates()), "missing templates key seeds defaults")
	assert.Equal(t, models.Settings{Theme: models.ThemeLight, Units: models.UnitsLb}, st.Settings)
	assert.NotNil(t, st.Bodyweight)

	require.Len(t, st.History, 1)
	ex := st.History[0].Exercises[0]
	assert.Equal(t, models.TrackingReps, ex.TrackingMode)
	assert.Equal(t, models.Quantity("100"), ex.Sets[0].Weight)
	assert.Equal(t, models.Quantity("5"), ex.Sets[0].Reps)
	assert.Nil(t, ex.Sets[0].DurationSeconds)
	assert.Equal(t, models.Quantity(""), ex.Sets[1].Reps)
	assert.Equal(t, 500.0, st.History[0].Volume())

	require.NotNil(t, st.ActiveSession)
	assert.Equal(t, models.TrackingReps, st.ActiveSession.Exercises[0].TrackingMode)
	assert.Equal(t, models.Quantity(""), st.ActiveSession.Exercises[0].Sets[0].Weight)
}

func TestDecode_EmptyTemplatesStayEmpty(t *testing.T) {
	st, err := store.Decode([]byte(`{"history": [], "templates": []}`))
	require.NoError(t, err)
	assert.Empty(t, st.Templates)
	assert.NotNil(t, st.Templates)
}

func TestDecode_NoBlob(t *testing.T) {
	for _, blob := range [][]byte{nil, []byte(""), []byte("null")} {
		st, err := store.Decode(blob)
		require.NoError(t, err)
		assert.Equal(t, store.NewState(), st)
	}
}

func TestDecode_Envelope(t *testing.T) {
	st, err := store.Decode([]byte(`{"state": {"history": [], "templates": [], "settings": {"theme": "dark", "units": "lb"}}, "version": 0}`))
	require.NoError(t, err)
	assert.Empty(t, st.Templates)
	assert.Equal(t, models.UnitsLb, st.Settings.Units)
}

func TestDecode_PartialSettings(t *testing.T) {
	st, err := store.Decode([]byte(`{"settings": {"units": "lb"}}`))
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, st.Settings.Theme)
	assert.Equal(t, models.UnitsLb, st.Settings.Units)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := store.Decode([]byte(`{"history": "nope"}`))
	assert.Error(t, err)
}

func TestMigrateBlob_Idempotent(t *testing.T) {
	once, err := store.MigrateBlob([]byte(legacyBlob))
	require.NoError(t, err)
	twice, err := store.MigrateBlob(once)
	require.NoError(t, err)

	if diff := cmp.Diff(string(once), string(twice)); diff != "" {
		t.Errorf("migration not idempotent (-once +twice):\n%s", diff)
	}

	a, err := store.Decode(once)
	require.NoError(t, err)
	b, err := store.Decode(twice)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("decoded states differ (-once +twice):\n%s", diff)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	env := testEnv()
	st, err := store.StartWorkout(store.NewState(), env, "conditioning")
	require.NoError(t, err)
	st, _ = store.AddBodyWeightEntry(st, env, models.BodyWeightEntry{DateISO: "2024-07-01", Weight: 80})

	data, err := store.Encode(st)
	require.NoError(t, err)
	back, err := store.Decode(data)
	require.NoError(t, err)

	if diff := cmp.Diff(st, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
