// ABOUTME: MCP tool implementations for workout logging and analytics.
// ABOUTME: Each tool drives one store transition or reads a derived view.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
	"github.com/CiaoGab/LIFTLOG/internal/duration"
	"github.com/CiaoGab/LIFTLOG/internal/models"
	"github.com/CiaoGab/LIFTLOG/internal/store"
)

var errNoActiveWorkout = errors.New("no active workout; call start_workout first")

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a workout from a template (ID or name), or an empty workout",
	}, s.handleStartWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the active workout",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log a set for an exercise in the active workout",
	}, s.handleLogSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Finish the active workout and move it to history",
	}, s.handleFinishWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cancel_workout",
		Description: "Discard the active workout",
	}, s.handleCancelWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_active_workout",
		Description: "Show the active workout with all exercises and sets",
	}, s.handleGetActiveWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List completed workouts, most recent first",
	}, s.handleListHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "personal_records",
		Description: "Heaviest completed set per exercise",
	}, s.handlePersonalRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "summary_stats",
		Description: "Workouts, sets, volume, and weekly frequency over recent weeks",
	}, s.handleSummaryStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_volume",
		Description: "Training volume per Monday-aligned week",
	}, s.handleWeeklyVolume)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_performance",
		Description: "Top set weight per day for one exercise",
	}, s.handleExercisePerformance)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_bodyweight",
		Description: "Record a bodyweight measurement",
	}, s.handleLogBodyweight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List workout templates",
	}, s.handleListTemplates)
}

// Tool input/output types

type emptyInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

type startWorkoutInput struct {
	Template string `json:"template,omitempty" jsonschema:"Template ID or name; omit for an empty workout"`
}

type startWorkoutOutput struct {
	WorkoutID string `json:"workout_id"`
	Name      string `json:"name"`
	Exercises int    `json:"exercises"`
	Message   string `json:"message"`
}

type addExerciseInput struct {
	Name        string `json:"name" jsonschema:"Exercise name"`
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Muscle group (chest, back, legs, ...)"`
	Category    string `json:"category,omitempty" jsonschema:"Category; cardio exercises are tracked by time"`
}

type addExerciseOutput struct {
	ExerciseID string `json:"exercise_id"`
	Message    string `json:"message"`
}

type logSetInput struct {
	Exercise  string   `json:"exercise" jsonschema:"Exercise ID or name in the active workout"`
	Reps      *float64 `json:"reps,omitempty" jsonschema:"Repetitions"`
	Weight    *float64 `json:"weight,omitempty" jsonschema:"Load in the configured units"`
	Duration  string   `json:"duration,omitempty" jsonschema:"Duration as m:ss or whole minutes, for time-tracked exercises"`
	RPE       *float64 `json:"rpe,omitempty" jsonschema:"Rate of perceived exertion"`
	Completed *bool    `json:"completed,omitempty" jsonschema:"Mark the set completed (default true)"`
}

type logSetOutput struct {
	SetID   string `json:"set_id"`
	Message string `json:"message"`
}

type finishWorkoutOutput struct {
	WorkoutID     string  `json:"workout_id"`
	SetsCompleted int     `json:"sets_completed"`
	Volume        float64 `json:"volume"`
	Duration      string  `json:"duration"`
	Message       string  `json:"message"`
}

type setView struct {
	ID        string `json:"id"`
	Reps      string `json:"reps,omitempty"`
	Weight    string `json:"weight,omitempty"`
	Duration  string `json:"duration,omitempty"`
	RPE       string `json:"rpe,omitempty"`
	Completed bool   `json:"completed"`
}

type exerciseView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MuscleGroup  string    `json:"muscle_group"`
	TrackingMode string    `json:"tracking_mode"`
	Notes        string    `json:"notes,omitempty"`
	Sets         []setView `json:"sets"`
}

type workoutView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    string         `json:"status"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time,omitempty"`
	Volume    float64        `json:"volume"`
	Exercises []exerciseView `json:"exercises"`
}

type activeWorkoutOutput struct {
	Active  bool         `json:"active"`
	Workout *workoutView `json:"workout,omitempty"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type historyItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Duration  string  `json:"duration"`
	Exercises int     `json:"exercises"`
	Sets      int     `json:"sets"`
	Volume    float64 `json:"volume"`
}

type listHistoryOutput struct {
	Total    int           `json:"total"`
	Workouts []historyItem `json:"workouts"`
}

type recordsOutput struct {
	Units   string                  `json:"units"`
	Records []analytics.NamedRecord `json:"records"`
}

type weeksInput struct {
	Weeks int `json:"weeks,omitempty" jsonschema:"Number of recent weeks to include"`
}

type weeklyVolumeOutput struct {
	Weeks []analytics.WeeklyVolume `json:"weeks"`
}

type exercisePerformanceInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name (case-insensitive)"`
}

type exercisePerformanceOutput struct {
	Exercise string                       `json:"exercise"`
	Points   []analytics.PerformancePoint `json:"points"`
}

type logBodyweightInput struct {
	Weight float64 `json:"weight" jsonschema:"Bodyweight"`
	Date   string  `json:"date,omitempty" jsonschema:"Date as YYYY-MM-DD, defaults to today"`
	Unit   string  `json:"unit,omitempty" jsonschema:"kg or lb, defaults to the configured units"`
	Note   string  `json:"note,omitempty" jsonschema:"Optional note"`
}

type logBodyweightOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type templateItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
	Tags      []string `json:"tags,omitempty"`
}

type listTemplatesOutput struct {
	Templates []templateItem `json:"templates"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, startWorkoutOutput, error) {
	templateID := ""
	if input.Template != "" {
		t, err := resolveTemplate(s.store.Snapshot(), input.Template)
		if err != nil {
			return nil, startWorkoutOutput{}, err
		}
		templateID = t.ID
	}

	id, err := s.store.StartWorkout(templateID)
	if err != nil {
		return nil, startWorkoutOutput{}, fmt.Errorf("failed to start workout: %w", err)
	}

	active := s.store.Snapshot().ActiveSession
	return nil, startWorkoutOutput{
		WorkoutID: id,
		Name:      active.Name,
		Exercises: len(active.Exercises),
		Message:   fmt.Sprintf("Started %s (ID: %s)", active.Name, shortID(id)),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, addExerciseOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, addExerciseOutput{}, errors.New("exercise name is required")
	}

	id := s.store.AddExercise(name, input.MuscleGroup, input.Category)
	if id == "" {
		return nil, addExerciseOutput{}, errNoActiveWorkout
	}

	return nil, addExerciseOutput{
		ExerciseID: id,
		Message:    fmt.Sprintf("Added %s", name),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logSetOutput, error) {
	active := s.store.Snapshot().ActiveSession
	if active == nil {
		return nil, logSetOutput{}, errNoActiveWorkout
	}
	ex, err := resolveExercise(active, input.Exercise)
	if err != nil {
		return nil, logSetOutput{}, err
	}

	update := models.SetUpdate{}
	if input.Reps != nil {
		q := models.QuantityOf(*input.Reps)
		update.Reps = &q
	}
	if input.Weight != nil {
		if *input.Weight < 0 {
			return nil, logSetOutput{}, store.ErrNegativeWeight
		}
		q := models.QuantityOf(*input.Weight)
		update.Weight = &q
	}
	if input.RPE != nil {
		q := models.QuantityOf(*input.RPE)
		update.RPE = &q
	}
	if input.Duration != "" {
		secs, ok := duration.Parse(input.Duration)
		if !ok {
			return nil, logSetOutput{}, fmt.Errorf("invalid duration %q (use m:ss or whole minutes)", input.Duration)
		}
		update.DurationSeconds = &secs
	}
	completed := true
	if input.Completed != nil {
		completed = *input.Completed
	}
	update.Completed = &completed

	setID, position, err := s.store.LogSet(ex.ID, update)
	if errors.Is(err, store.ErrNoActiveSession) {
		return nil, logSetOutput{}, errNoActiveWorkout
	}
	if err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	return nil, logSetOutput{
		SetID:   setID,
		Message: fmt.Sprintf("Logged set %d of %s", position, ex.Name),
	}, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, finishWorkoutOutput, error) {
	if err := s.store.FinishWorkout(); err != nil {
		return nil, finishWorkoutOutput{}, fmt.Errorf("failed to finish workout: %w", err)
	}

	history := s.store.Snapshot().History
	w := &history[0]
	secs := int(w.Duration().Seconds())
	return nil, finishWorkoutOutput{
		WorkoutID:     w.ID,
		SetsCompleted: w.CompletedSets(),
		Volume:        w.Volume(),
		Duration:      duration.FormatSeconds(secs),
		Message:       fmt.Sprintf("Finished %s: %d sets", w.Name, w.CompletedSets()),
	}, nil
}

func (s *Server) handleCancelWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	if s.store.Snapshot().ActiveSession == nil {
		return nil, simpleOutput{Message: "No active workout."}, nil
	}
	s.store.CancelWorkout()
	return nil, simpleOutput{Message: "Workout discarded."}, nil
}

func (s *Server) handleGetActiveWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, activeWorkoutOutput, error) {
	active := s.store.Snapshot().ActiveSession
	if active == nil {
		return nil, activeWorkoutOutput{}, nil
	}
	view := newWorkoutView(active)
	return nil, activeWorkoutOutput{Active: true, Workout: &view}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, listHistoryOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	history := s.store.Snapshot().History
	out := listHistoryOutput{Total: len(history), Workouts: []historyItem{}}
	for i := range history {
		if i >= input.Limit {
			break
		}
		w := &history[i]
		out.Workouts = append(out.Workouts, historyItem{
			ID:        w.ID,
			Name:      w.Name,
			Date:      analytics.DateISO(w.StartTime),
			Duration:  duration.FormatSeconds(int(w.Duration().Seconds())),
			Exercises: len(w.Exercises),
			Sets:      w.CompletedSets(),
			Volume:    w.Volume(),
		})
	}
	return nil, out, nil
}

func (s *Server) handlePersonalRecords(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, recordsOutput, error) {
	return nil, recordsOutput{
		Units:   string(s.store.Snapshot().Settings.Units),
		Records: analytics.SortedRecords(s.store.PersonalRecords()),
	}, nil
}

func (s *Server) handleSummaryStats(ctx context.Context, req *mcp.CallToolRequest, input weeksInput) (*mcp.CallToolResult, analytics.SummaryStats, error) {
	weeks := input.Weeks
	if weeks <= 0 {
		weeks = 4
	}
	return nil, analytics.ComputeSummaryStats(s.store.Snapshot().History, weeks, s.store.Now()), nil
}

func (s *Server) handleWeeklyVolume(ctx context.Context, req *mcp.CallToolRequest, input weeksInput) (*mcp.CallToolResult, weeklyVolumeOutput, error) {
	weeks := input.Weeks
	if weeks <= 0 {
		weeks = 8
	}
	trend := analytics.ComputeWeeklyVolumeTrend(s.store.Snapshot().History, weeks, s.store.Now())
	return nil, weeklyVolumeOutput{Weeks: trend}, nil
}

func (s *Server) handleExercisePerformance(ctx context.Context, req *mcp.CallToolRequest, input exercisePerformanceInput) (*mcp.CallToolResult, exercisePerformanceOutput, error) {
	if strings.TrimSpace(input.Exercise) == "" {
		return nil, exercisePerformanceOutput{}, errors.New("exercise is required")
	}
	points := analytics.ComputeExercisePerformance(s.store.Snapshot().History, input.Exercise)
	return nil, exercisePerformanceOutput{Exercise: input.Exercise, Points: points}, nil
}

func (s *Server) handleLogBodyweight(ctx context.Context, req *mcp.CallToolRequest, input logBodyweightInput) (*mcp.CallToolResult, logBodyweightOutput, error) {
	if input.Weight <= 0 {
		return nil, logBodyweightOutput{}, errors.New("weight must be positive")
	}

	date := input.Date
	if date == "" {
		date = analytics.DateISO(s.store.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, logBodyweightOutput{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
	}

	var unit models.Units
	switch input.Unit {
	case "":
	case string(models.UnitsKg), string(models.UnitsLb):
		unit = models.Units(input.Unit)
	default:
		return nil, logBodyweightOutput{}, fmt.Errorf("unknown unit %q", input.Unit)
	}

	id := s.store.AddBodyWeightEntry(models.BodyWeightEntry{
		DateISO: date,
		Weight:  input.Weight,
		Unit:    unit,
		Note:    input.Note,
	})

	return nil, logBodyweightOutput{
		ID:      id,
		Message: fmt.Sprintf("Logged bodyweight %.1f on %s", input.Weight, date),
	}, nil
}

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, listTemplatesOutput, error) {
	templates := s.store.Snapshot().Templates
	out := listTemplatesOutput{Templates: make([]templateItem, 0, len(templates))}
	for _, t := range templates {
		item := templateItem{ID: t.ID, Name: t.Name, Tags: t.Tags}
		for _, te := range t.Exercises {
			item.Exercises = append(item.Exercises, te.Name)
		}
		out.Templates = append(out.Templates, item)
	}
	return nil, out, nil
}

// Helpers

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveTemplate matches a template by exact id, id prefix, or case-insensitive name.
func resolveTemplate(st store.State, ref string) (*models.Template, error) {
	var matches []*models.Template
	for i := range st.Templates {
		t := &st.Templates[i]
		if t.ID == ref || strings.EqualFold(t.Name, ref) {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("template not found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous template reference %q matches %d templates", ref, len(matches))
	}
}

// resolveExercise matches an exercise in the session by id or case-insensitive name.
func resolveExercise(w *models.WorkoutSession, ref string) (*models.Exercise, error) {
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		if ex.ID == ref || strings.EqualFold(ex.Name, ref) {
			return ex, nil
		}
	}
	return nil, fmt.Errorf("exercise not found in active workout: %s", ref)
}

func newWorkoutView(w *models.WorkoutSession) workoutView {
	view := workoutView{
		ID:        w.ID,
		Name:      w.Name,
		Status:    string(w.Status),
		StartTime: w.StartTime.UTC().Format(time.RFC3339),
		Volume:    w.Volume(),
		Exercises: make([]exerciseView, 0, len(w.Exercises)),
	}
	if w.EndTime != nil {
		view.EndTime = w.EndTime.UTC().Format(time.RFC3339)
	}
	for _, ex := range w.Exercises {
		ev := exerciseView{
			ID:           ex.ID,
			Name:         ex.Name,
			MuscleGroup:  ex.MuscleGroup,
			TrackingMode: string(ex.TrackingMode),
			Notes:        ex.Notes,
			Sets:         make([]setView, 0, len(ex.Sets)),
		}
		for _, set := range ex.Sets {
			ev.Sets = append(ev.Sets, setView{
				ID:        set.ID,
				Reps:      set.Reps.String(),
				Weight:    set.Weight.String(),
				Duration:  duration.Format(set.DurationSeconds),
				RPE:       set.RPE.String(),
				Completed: set.Completed,
			})
		}
		view.Exercises = append(view.Exercises, ev)
	}
	return view
}
