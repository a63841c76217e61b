// ABOUTME: Parquet encoding of the sets row-set for columnar analysis tools.
// ABOUTME: Mirrors sets.csv with typed numeric columns and a per-set volume.
package export

import (
	"fmt"
	"math"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/CiaoGab/LIFTLOG/internal/models"
)

type setParquetRow struct {
	SetID           string  `parquet:"name=set_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	ExerciseID      string  `parquet:"name=exercise_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	WorkoutID       string  `parquet:"name=workout_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	WorkoutDate     string  `parquet:"name=workout_date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ExerciseName    string  `parquet:"name=exercise_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TrackingMode    string  `parquet:"name=tracking_mode, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SetNumber       int64   `parquet:"name=set_number, type=INT64"`
	Weight          float64 `parquet:"name=weight, type=DOUBLE"`
	Reps            float64 `parquet:"name=reps, type=DOUBLE"`
	DurationSeconds *int64  `parquet:"name=duration_seconds, type=INT64, repetitiontype=OPTIONAL"`
	RPE             string  `parquet:"name=rpe, type=BYTE_ARRAY, convertedtype=UTF8"`
	Completed       bool    `parquet:"name=completed, type=BOOLEAN"`
	Volume          float64 `parquet:"name=volume, type=DOUBLE"`
}

func numberOrNaN(q models.Quantity) float64 {
	if !q.IsNumeric() {
		return math.NaN()
	}
	return q.Number()
}

// SetsParquet encodes one row per set as snappy-compressed Parquet.
// Non-numeric weight or reps are written as NaN.
func SetsParquet(history []models.WorkoutSession) ([]byte, error) {
	if len(history) == 0 {
		return nil, ErrNothingToExport
	}

	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(setParquetRow), 4)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range history {
		s := &history[i]
		date := dateOf(s.StartTime)
		for j := range s.Exercises {
			ex := &s.Exercises[j]
			for k, set := range ex.Sets {
				row := setParquetRow{
					SetID:        set.ID,
					ExerciseID:   ex.ID,
					WorkoutID:    s.ID,
					WorkoutDate:  date,
					ExerciseName: ex.Name,
					TrackingMode: string(ex.TrackingMode),
					SetNumber:    int64(k + 1),
					Weight:       numberOrNaN(set.Weight),
					Reps:         numberOrNaN(set.Reps),
					RPE:          set.RPE.String(),
					Completed:    set.Completed,
				}
				if set.DurationSeconds != nil {
					d := int64(*set.DurationSeconds)
					row.DurationSeconds = &d
				}
				if v, ok := ex.SetVolume(set); ok {
					row.Volume = v
				}
				if err := pw.Write(row); err != nil {
					_ = pw.WriteStop()
					return nil, fmt.Errorf("write parquet row: %w", err)
				}
			}
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finish parquet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("close parquet buffer: %w", err)
	}
	return append([]byte(nil), fw.Bytes()...), nil
}
