package workouts

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the single owner of the logged workouts and the (at most one)
// in-progress workout. All reads return deep copies.
type Store struct {
	mu       sync.RWMutex
	workouts []Workout // most recent first
	active   *Workout
	version  uint64

	now   func() time.Time
	newID func() string
}

type StoreOption func(*Store)

// WithClock overrides the time source, mostly used in tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides how workout IDs are generated.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		workouts: make([]Workout, 0),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartWorkout opens a new in-progress workout.
func (s *Store) StartWorkout() (*Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, fmt.Errorf("start workout: workout [%s] already in progress: %w", s.active.ID, ErrInvalidState)
	}

	s.active = &Workout{
		ID:        s.newID(),
		StartTime: s.now(),
		Exercises: make([]ExerciseEntry, 0),
	}
	s.version++

	w := s.active.Clone()
	return &w, nil
}

// AddExercise appends a validated entry to the in-progress workout.
func (s *Store) AddExercise(entry ExerciseEntry) (*Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, fmt.Errorf("add exercise: no workout in progress: %w", ErrInvalidState)
	}
	if err := entry.Validate(len(s.active.Exercises)); err != nil {
		return nil, err
	}

	s.active.Exercises = append(s.active.Exercises, entry.withDefaults())
	s.version++

	w := s.active.Clone()
	return &w, nil
}

// CompleteWorkout stamps the end time and duration of the in-progress
// workout and moves it into the permanent collection.
func (s *Store) CompleteWorkout() (*Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, fmt.Errorf("complete workout: no workout in progress: %w", ErrInvalidState)
	}

	completed := s.active.Clone()
	end := s.now()
	completed.EndTime = &end
	completed.DurationMinutes = durationMinutes(completed.StartTime, end)

	s.insert(completed)
	s.active = nil
	s.version++

	w := completed.Clone()
	return &w, nil
}

// LogWorkout inserts a fully formed, already completed workout.
// Either every entry is valid and the workout is stored, or nothing changes.
func (s *Store) LogWorkout(workout Workout) (*Workout, error) {
	if workout.DurationMinutes < 0 {
		return nil, newValidationError(-1, "durationMinutes", "must not be negative")
	}
	for i, e := range workout.Exercises {
		if err := e.Validate(i); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logged := workout.Clone()
	for i := range logged.Exercises {
		logged.Exercises[i] = logged.Exercises[i].withDefaults()
	}
	if logged.ID == "" {
		logged.ID = s.newID()
	} else if s.indexOf(logged.ID) >= 0 || (s.active != nil && s.active.ID == logged.ID) {
		return nil, newValidationError(-1, "id", "already exists")
	}
	if logged.StartTime.IsZero() {
		logged.StartTime = s.now()
	}
	if logged.EndTime == nil {
		end := logged.StartTime.Add(time.Duration(logged.DurationMinutes) * time.Minute)
		logged.EndTime = &end
	} else if err := checkEndTime(&logged); err != nil {
		return nil, err
	}

	s.insert(logged)
	s.version++

	w := logged.Clone()
	return &w, nil
}

// DeleteWorkout removes the workout with the given id. Unknown ids are
// ignored so deletion stays idempotent; the returned bool tells whether
// anything was removed.
func (s *Store) DeleteWorkout(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.workouts = append(s.workouts[:i:i], s.workouts[i+1:]...)
	s.version++
	return true
}

// ListWorkouts returns a most-recent-first snapshot of the completed workouts.
func (s *Store) ListWorkouts() []Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneAll(s.workouts)
}

// Snapshot returns the completed workouts together with the version they
// were read at, both under the same lock.
func (s *Store) Snapshot() ([]Workout, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneAll(s.workouts), s.version
}

// GetWorkout returns a completed workout by id.
func (s *Store) GetWorkout(id string) (*Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrWorkoutNotFound
	}
	w := s.workouts[i].Clone()
	return &w, nil
}

// ActiveWorkout returns the in-progress workout, if any.
func (s *Store) ActiveWorkout() (*Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil {
		return nil, false
	}
	w := s.active.Clone()
	return &w, true
}

// RestoreActive puts a previously started (draft) workout back into the
// active slot, e.g. after a restart.
func (s *Store) RestoreActive(workout Workout) error {
	if !workout.InProgress() {
		return newValidationError(-1, "endTime", "must be empty for an in-progress workout")
	}
	for i, e := range workout.Exercises {
		if err := e.Validate(i); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return fmt.Errorf("restore workout: workout [%s] already in progress: %w", s.active.ID, ErrInvalidState)
	}

	restored := workout.Clone()
	if restored.ID == "" {
		restored.ID = s.newID()
	} else if s.indexOf(restored.ID) >= 0 {
		return newValidationError(-1, "id", "already completed")
	}
	s.active = &restored
	s.version++
	return nil
}

// Load replaces the completed collection, e.g. with workouts read from
// the sync layer at startup. Invalid input leaves the store untouched.
func (s *Store) Load(workouts []Workout) error {
	loaded := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.DurationMinutes < 0 {
			return fmt.Errorf("load workout [%s]: %w", w.ID, newValidationError(-1, "durationMinutes", "must not be negative"))
		}
		for i, e := range w.Exercises {
			if err := e.Validate(i); err != nil {
				return fmt.Errorf("load workout [%s]: %w", w.ID, err)
			}
		}
		c := w.Clone()
		if c.EndTime == nil {
			end := c.StartTime.Add(time.Duration(c.DurationMinutes) * time.Minute)
			c.EndTime = &end
		}
		loaded = append(loaded, c)
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].StartTime.After(loaded[j].StartTime)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts = loaded
	s.version++
	return nil
}

// Version changes on every mutation; readers use it as a cache key.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// insert keeps the collection ordered most recent first; a workout
// starting at the same instant as an existing one goes in front of it.
func (s *Store) insert(w Workout) {
	i := sort.Search(len(s.workouts), func(i int) bool {
		return !w.StartTime.Before(s.workouts[i].StartTime)
	})
	s.workouts = append(s.workouts, Workout{})
	copy(s.workouts[i+1:], s.workouts[i:])
	s.workouts[i] = w
}

func (s *Store) indexOf(id string) int {
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			return i
		}
	}
	return -1
}

// checkEndTime rejects an explicit end time that precedes the start or
// disagrees with the given duration. A zero duration is derived from it.
func checkEndTime(w *Workout) error {
	if w.EndTime.Before(w.StartTime) {
		return newValidationError(-1, "endTime", "must not be before startTime")
	}
	d := durationMinutes(w.StartTime, *w.EndTime)
	if w.DurationMinutes == 0 {
		w.DurationMinutes = d
		return nil
	}
	if d != w.DurationMinutes {
		return newValidationError(-1, "endTime", "does not match durationMinutes")
	}
	return nil
}
