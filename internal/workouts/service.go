package workouts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type syncRepo interface {
	Add(ctx context.Context, workout Workout) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Workout, error)
}

type draftCache interface {
	Save(ctx context.Context, workout Workout) error
	Load(ctx context.Context) (*Workout, error)
	Clear(ctx context.Context) error
}

// Service funnels every workout mutation through the Store and then
// mirrors it to the optional sync targets. A failing sync target is
// logged and counted, it never rolls back the in-memory state.
type Service struct {
	// draftMu orders live workout mutations with their draft writes, so a
	// late Save can never resurrect a completed workout's draft.
	draftMu        sync.Mutex
	store          *Store
	repo           syncRepo
	drafts         draftCache
	metricsManager *metrics.Manager
}

type NewServiceParams struct {
	Store          *Store
	Repo           syncRepo   // optional
	Drafts         draftCache // optional
	MetricsManager *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		store:          params.Store,
		repo:           params.Repo,
		drafts:         params.Drafts,
		metricsManager: params.MetricsManager,
	}
}

// Bootstrap loads the initial workouts collection from the sync repo and
// resumes a cached draft workout, if any.
func (s *Service) Bootstrap(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.bootstrap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.repo != nil {
		workouts, err := s.repo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}
		if err := s.store.Load(workouts); err != nil {
			return fmt.Errorf("load workouts: %w", err)
		}
		span.SetAttributes(attribute.Int("workouts.loaded", len(workouts)))
		log.Infof("loaded %d workouts", len(workouts))
	}

	if s.drafts != nil {
		draft, err := s.drafts.Load(ctx)
		if err != nil {
			// a lost draft is not fatal, the user can start over
			log.Errorf("failed to load workout draft: %s", err)
		} else if draft != nil {
			if err := s.store.RestoreActive(*draft); err != nil {
				log.Errorf("failed to restore workout draft [%s]: %s", draft.ID, err)
				if errors.Is(err, ErrValidation) {
					s.clearDraft(ctx)
				}
			} else {
				log.Infof("resumed in-progress workout [%s]", draft.ID)
			}
		}
	}

	s.refreshGauges()
	return nil
}

func (s *Service) StartWorkout(ctx context.Context) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	w, err := s.store.StartWorkout()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", w.ID))

	s.metricsManager.CounterWorkoutsStarted.Inc()
	s.saveDraft(ctx, *w)
	s.refreshGauges()
	return w, nil
}

func (s *Service) AddExercise(ctx context.Context, entry ExerciseEntry) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.add-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.name", entry.ExerciseName))

	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	w, err := s.store.AddExercise(entry)
	if err != nil {
		s.countValidationFailure(err)
		return nil, err
	}

	s.metricsManager.CounterExercisesAdded.Inc()
	s.saveDraft(ctx, *w)
	return w, nil
}

func (s *Service) CompleteWorkout(ctx context.Context) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	w, err := s.store.CompleteWorkout()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout.id", w.ID))
	span.SetAttributes(attribute.Int("workout.duration", w.DurationMinutes))

	s.metricsManager.CounterWorkoutsCompleted.Inc()
	s.metricsManager.HistWorkoutDuration.Observe(float64(w.DurationMinutes))

	s.persist(ctx, *w)
	s.clearDraft(ctx)

	s.refreshGauges()
	return w, nil
}

func (s *Service) LogWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.exercises", len(workout.Exercises)))

	w, err := s.store.LogWorkout(workout)
	if err != nil {
		s.countValidationFailure(err)
		return nil, err
	}

	s.metricsManager.CounterWorkoutsLogged.Inc()
	s.persist(ctx, *w)
	s.refreshGauges()
	return w, nil
}

// DeleteWorkout is idempotent; it reports whether a workout was removed.
func (s *Service) DeleteWorkout(ctx context.Context, id string) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer span.End()
	span.SetAttributes(attribute.String("workout.id", id))

	removed := s.store.DeleteWorkout(id)
	span.SetAttributes(attribute.Bool("workout.removed", removed))
	if !removed {
		return false
	}

	s.metricsManager.CounterWorkoutsDeleted.Inc()
	if s.repo != nil {
		if err := s.repo.Delete(ctx, id); err != nil {
			log.Errorf("failed to delete workout [%s] from repo: %s", id, err)
			s.metricsManager.CounterSyncFailures.WithLabelValues("repo", "delete").Inc()
		}
	}

	s.refreshGauges()
	return true
}

func (s *Service) ListWorkouts() []Workout {
	return s.store.ListWorkouts()
}

func (s *Service) GetWorkout(id string) (*Workout, error) {
	return s.store.GetWorkout(id)
}

func (s *Service) ActiveWorkout() (*Workout, bool) {
	return s.store.ActiveWorkout()
}

// Snapshot returns the completed workouts together with the store version
// they were read at.
func (s *Service) Snapshot() ([]Workout, uint64) {
	return s.store.Snapshot()
}

func (s *Service) persist(ctx context.Context, w Workout) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Add(ctx, w); err != nil {
		log.Errorf("failed to persist workout [%s]: %s", w.ID, err)
		s.metricsManager.CounterSyncFailures.WithLabelValues("repo", "add").Inc()
	}
}

func (s *Service) saveDraft(ctx context.Context, w Workout) {
	if s.drafts == nil {
		return
	}
	if err := s.drafts.Save(ctx, w); err != nil {
		log.Errorf("failed to save workout draft [%s]: %s", w.ID, err)
		s.metricsManager.CounterSyncFailures.WithLabelValues("drafts", "save").Inc()
	}
}

func (s *Service) clearDraft(ctx context.Context) {
	if s.drafts == nil {
		return
	}
	if err := s.drafts.Clear(ctx); err != nil {
		log.Errorf("failed to clear workout draft: %s", err)
		s.metricsManager.CounterSyncFailures.WithLabelValues("drafts", "clear").Inc()
	}
}

func (s *Service) countValidationFailure(err error) {
	if errors.Is(err, ErrValidation) {
		s.metricsManager.CounterValidationFailures.Inc()
	}
}

func (s *Service) refreshGauges() {
	if _, ok := s.store.ActiveWorkout(); ok {
		s.metricsManager.GaugeActiveWorkout.Set(1)
	} else {
		s.metricsManager.GaugeActiveWorkout.Set(0)
	}
	s.metricsManager.GaugeWorkouts.Set(float64(len(s.store.ListWorkouts())))
}
