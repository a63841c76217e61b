// ABOUTME: Store wraps the pure transitions with observers and persistence.
// ABOUTME: Every successful transition swaps in a new snapshot and saves it.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/CiaoGab/LIFTLOG/internal/analytics"
	"github.com/CiaoGab/LIFTLOG/internal/models"
)

// Backend persists the encoded state blob.
type Backend interface {
	LoadState() ([]byte, error)
	SaveState(data []byte) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.env.Now = now }
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.env.NewID = newID }
}

// WithLogger sets the logger used for transition and persistence messages.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithThemeHook registers a callback run on load and whenever the theme changes.
func WithThemeHook(fn func(models.Theme)) Option {
	return func(s *Store) { s.themeHook = fn }
}

// Store owns the application state.
type Store struct {
	mu        sync.Mutex
	state     State
	env       Env
	backend   Backend
	log       logrus.FieldLogger
	themeHook func(models.Theme)

	obsMu     sync.Mutex
	observers map[uint64]func(State)
	nextObs   uint64
}

// New creates an in-memory store starting from st. A nil backend disables persistence.
func New(st State, backend Backend, opts ...Option) *Store {
	s := &Store{
		state:     st,
		env:       Env{Now: time.Now, NewID: uuid.NewString},
		backend:   backend,
		log:       logrus.StandardLogger(),
		observers: make(map[uint64]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.themeHook != nil {
		s.themeHook(st.Settings.Theme)
	}
	return s
}

// Load reads and migrates the persisted state from backend.
func Load(backend Backend, opts ...Option) (*Store, error) {
	blob, err := backend.LoadState()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	st, err := Decode(blob)
	if err != nil {
		return nil, err
	}
	return New(st, backend, opts...), nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.env.Now()
}

// Subscribe registers fn to receive each new snapshot. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers, id)
	}
}

// apply runs a transition. On error the state is left untouched and nothing
// is persisted or published.
func (s *Store) apply(op string, fn func(State) (State, error)) error {
	s.mu.Lock()
	next, err := fn(s.state)
	if err != nil {
		s.mu.Unlock()
		s.log.WithField("op", op).WithError(err).Debug("transition rejected")
		return err
	}
	s.state = next
	s.persist(op)
	snap := next.Clone()
	s.mu.Unlock()

	s.log.WithField("op", op).Debug("state updated")
	s.publish(snap)
	return nil
}

func (s *Store) update(op string, fn func(State) State) {
	_ = s.apply(op, func(st State) (State, error) { return fn(st), nil })
}

// persist must be called with mu held. Failures are logged, not returned.
func (s *Store) persist(op string) {
	if s.backend == nil {
		return
	}
	data, err := Encode(s.state)
	if err == nil {
		err = s.backend.SaveState(data)
	}
	if err != nil {
		s.log.WithField("op", op).WithError(err).Error("persist state")
	}
}

func (s *Store) publish(snap State) {
	s.obsMu.Lock()
	fns := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// StartWorkout starts a session from a template, or an empty one when
// templateID is "". Returns the new session id.
func (s *Store) StartWorkout(templateID string) (string, error) {
	var id string
	err := s.apply("start_workout", func(st State) (State, error) {
		next, err := StartWorkout(st, s.env, templateID)
		if err == nil {
			id = next.ActiveSession.ID
		}
		return next, err
	})
	return id, err
}

// FinishWorkout validates and completes the active session.
func (s *Store) FinishWorkout() error {
	return s.apply("finish_workout", func(st State) (State, error) {
		return FinishWorkout(st, s.env)
	})
}

// CancelWorkout discards the active session.
func (s *Store) CancelWorkout() {
	s.update("cancel_workout", CancelWorkout)
}

// AddExercise appends an exercise to the active session and returns its id,
// or "" when no session is active.
func (s *Store) AddExercise(name, muscleGroup, category string) string {
	var id string
	s.update("add_exercise", func(st State) State {
		var next State
		next, id = AddExercise(st, s.env, name, muscleGroup, category)
		return next
	})
	return id
}

// RemoveExercise drops an exercise from the active session.
func (s *Store) RemoveExercise(exerciseID string) {
	s.update("remove_exercise", func(st State) State { return RemoveExercise(st, exerciseID) })
}

// ToggleTrackingMode flips an exercise between reps and time.
func (s *Store) ToggleTrackingMode(exerciseID string) {
	s.update("toggle_tracking_mode", func(st State) State { return ToggleTrackingMode(st, exerciseID) })
}

// UpdateExerciseNotes replaces an exercise's notes.
func (s *Store) UpdateExerciseNotes(exerciseID, notes string) {
	s.update("update_exercise_notes", func(st State) State { return UpdateExerciseNotes(st, exerciseID, notes) })
}

// UpdateSet merges the non-nil fields of u into a set.
func (s *Store) UpdateSet(exerciseID, setID string, u models.SetUpdate) {
	s.update("update_set", func(st State) State { return UpdateSet(st, exerciseID, setID, u) })
}

// AddSet appends a blank set to an exercise.
func (s *Store) AddSet(exerciseID string) {
	s.update("add_set", func(st State) State { return AddSet(st, s.env, exerciseID) })
}

// CopyLastSet appends an incomplete copy of an exercise's last set.
func (s *Store) CopyLastSet(exerciseID string) {
	s.update("copy_last_set", func(st State) State { return CopyLastSet(st, s.env, exerciseID) })
}

// LogSet fills the next open set of an exercise, appending one when none is
// open, in a single transition. It returns the set id and its 1-based position.
func (s *Store) LogSet(exerciseID string, u models.SetUpdate) (string, int, error) {
	var id string
	var position int
	err := s.apply("log_set", func(st State) (State, error) {
		next, setID, pos, err := LogSet(st, s.env, exerciseID, u)
		id, position = setID, pos
		return next, err
	})
	return id, position, err
}

// RemoveSet drops a set from an exercise.
func (s *Store) RemoveSet(exerciseID, setID string) {
	s.update("remove_set", func(st State) State { return RemoveSet(st, exerciseID, setID) })
}

// CreateTemplate stores t under a new id and returns it.
func (s *Store) CreateTemplate(t models.Template) string {
	var id string
	s.update("create_template", func(st State) State {
		var next State
		next, id = CreateTemplate(st, s.env, t)
		return next
	})
	return id
}

// UpdateTemplate merges the non-nil fields of u into a template.
func (s *Store) UpdateTemplate(id string, u models.TemplateUpdate) {
	s.update("update_template", func(st State) State { return UpdateTemplate(st, id, u) })
}

// DeleteTemplate removes a template.
func (s *Store) DeleteTemplate(id string) {
	s.update("delete_template", func(st State) State { return DeleteTemplate(st, id) })
}

// ToggleTheme flips the theme and runs the theme hook.
func (s *Store) ToggleTheme() models.Theme {
	var theme models.Theme
	s.update("toggle_theme", func(st State) State {
		next := ToggleTheme(st)
		theme = next.Settings.Theme
		return next
	})
	if s.themeHook != nil {
		s.themeHook(theme)
	}
	return theme
}

// ToggleUnits flips the load units.
func (s *Store) ToggleUnits() models.Units {
	var units models.Units
	s.update("toggle_units", func(st State) State {
		next := ToggleUnits(st)
		units = next.Settings.Units
		return next
	})
	return units
}

// DeleteHistoryItem removes a completed workout from history.
func (s *Store) DeleteHistoryItem(id string) {
	s.update("delete_history_item", func(st State) State { return DeleteHistoryItem(st, id) })
}

// DuplicateWorkout starts a new session from a history entry and returns its id.
func (s *Store) DuplicateWorkout(id string) (string, error) {
	var newID string
	err := s.apply("duplicate_workout", func(st State) (State, error) {
		next, err := DuplicateWorkout(st, s.env, id)
		if err == nil {
			newID = next.ActiveSession.ID
		}
		return next, err
	})
	return newID, err
}

// PersonalRecords derives records from the current history.
func (s *Store) PersonalRecords() map[string]analytics.PersonalRecord {
	s.mu.Lock()
	history := s.state.History
	s.mu.Unlock()
	return analytics.PersonalRecords(history)
}

// AddBodyWeightEntry records an entry and returns its id.
func (s *Store) AddBodyWeightEntry(e models.BodyWeightEntry) string {
	var id string
	s.update("add_bodyweight", func(st State) State {
		var next State
		next, id = AddBodyWeightEntry(st, s.env, e)
		return next
	})
	return id
}

// UpdateBodyWeightEntry merges the non-nil fields of u into an entry.
func (s *Store) UpdateBodyWeightEntry(id string, u models.BodyWeightUpdate) {
	s.update("update_bodyweight", func(st State) State { return UpdateBodyWeightEntry(st, id, u) })
}

// DeleteBodyWeightEntry removes a bodyweight entry.
func (s *Store) DeleteBodyWeightEntry(id string) {
	s.update("delete_bodyweight", func(st State) State { return DeleteBodyWeightEntry(st, id) })
}

// Merge imports records from incoming that are not already present.
func (s *Store) Merge(incoming State) MergeSummary {
	var sum MergeSummary
	s.update("merge", func(st State) State {
		var next State
		next, sum = Merge(st, incoming)
		return next
	})
	return sum
}
