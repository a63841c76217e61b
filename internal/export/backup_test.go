// ABOUTME: Tests for JSON backups, YAML summaries, and Markdown output.
// ABOUTME: Backups must decode back into equivalent collections.
package export_test

import (
	"testing"

	"github.com/CiaoGab/LIFTLOG/internal/export"
	"github.com/CiaoGab/LIFTLOG/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupJSONImportable(t *testing.T) {
	templates := []models.Template{{ID: "t1", Name: "Push", Exercises: []models.TemplateExercise{{Name: "Bench", TargetSets: 3, TargetReps: "5"}}}}
	bw := []models.BodyWeightEntry{{ID: "b1", DateISO: "2024-06-01", Weight: 81.2, Unit: models.UnitsKg}}

	b := export.NewBackup(sampleHistory(), templates, bw, models.DefaultSettings())
	data, err := b.JSON()
	require.NoError(t, err)

	back, err := export.ParseBackup(data)
	require.NoError(t, err)
	assert.Equal(t, export.BackupVersion, back.Version)
	assert.Equal(t, "liftlog", back.Tool)
	require.Len(t, back.History, 1)
	assert.True(t, back.History[0].StartTime.Equal(start))
	assert.Equal(t, 1880.0, back.History[0].Volume())
	assert.Equal(t, templates[0].Exercises, back.Templates[0].Exercises)
	assert.Equal(t, bw, back.Bodyweight)
	assert.Equal(t, models.UnitsKg, back.Settings.Units)
}

func TestParseBackup_Invalid(t *testing.T) {
	_, err := export.ParseBackup([]byte(`{"history": []}`))
	assert.Error(t, err)

	_, err = export.ParseBackup([]byte(`not json`))
	assert.Error(t, err)
}

func TestBackupYAML(t *testing.T) {
	b := export.NewBackup(sampleHistory(), nil, nil, models.DefaultSettings())
	data, err := b.YAML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "name: Upper A")
	assert.Contains(t, out, "100 x 10")
	assert.Contains(t, out, "10:00")
	assert.Contains(t, out, "duration_minutes: 53")
	assert.Contains(t, out, "units: kg")
}

func TestMarkdown(t *testing.T) {
	md := export.Markdown(sampleHistory(), nil, models.UnitsKg)
	assert.Contains(t, md, "| Date | Workout | Duration | Sets | Volume |")
	assert.Contains(t, md, "| Upper A | 53 min | 3 | 1880 kg |")
}
