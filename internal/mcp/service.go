package mcp

import (
	"context"
	"time"

	"github.com/2beens/gymdash/internal/analytics"
	"github.com/2beens/gymdash/internal/progress"
	"github.com/2beens/gymdash/internal/recommendations"
	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// WorkoutsSource yields the current workouts, most recent first.
type WorkoutsSource interface {
	Snapshot() ([]workouts.Workout, uint64)
}

// WorkoutStats is the result of get_workout_stats.
type WorkoutStats struct {
	Period analytics.Period `json:"period"`
	analytics.Stats
	TotalVolume  float64                     `json:"totalVolume"`
	Exercises    []analytics.ExerciseSummary `json:"exercises"`
	MuscleGroups map[string]int              `json:"muscleGroups"`
	Consistency  float64                     `json:"consistency"`
}

// ExerciseProgress is the result of get_exercise_progress.
type ExerciseProgress struct {
	Exercise          string                   `json:"exercise"`
	Series            []progress.ProgressPoint `json:"series"`
	RecentImprovement float64                  `json:"recentImprovement"`
	Trend             progress.Trend           `json:"trend"`
}

// PersonalRecord is the result of get_personal_record. Found is false when
// the exercise was never logged.
type PersonalRecord struct {
	Exercise string                  `json:"exercise"`
	Found    bool                    `json:"found"`
	Record   *progress.ProgressPoint `json:"record,omitempty"`
}

// ContextService answers MCP tool queries from the in-memory workout history.
type ContextService struct {
	workouts     WorkoutsSource
	muscleGroups analytics.MuscleGroupLookup
	engine       *recommendations.Engine
	now          func() time.Time
}

// NewContextService builds the service. A nil clock means time.Now.
func NewContextService(
	source WorkoutsSource,
	muscleGroups analytics.MuscleGroupLookup,
	engine *recommendations.Engine,
	clock func() time.Time,
) *ContextService {
	if clock == nil {
		clock = time.Now
	}
	return &ContextService{
		workouts:     source,
		muscleGroups: muscleGroups,
		engine:       engine,
		now:          clock,
	}
}

func (s *ContextService) WorkoutStats(ctx context.Context, period analytics.Period) *WorkoutStats {
	_, span := tracing.GlobalTracer.Start(ctx, "mcp.service.workout-stats")
	defer span.End()
	span.SetAttributes(attribute.String("period", string(period)))

	all, _ := s.workouts.Snapshot()
	now := s.now()
	ws := analytics.FilterByPeriod(all, period, now)
	cfg := s.engine.Config()

	return &WorkoutStats{
		Period:       period,
		Stats:        analytics.ComputeStats(ws),
		TotalVolume:  analytics.TotalVolume(ws),
		Exercises:    analytics.ComputeExerciseSummaries(ws),
		MuscleGroups: analytics.ComputeMuscleGroupDistribution(ws, s.muscleGroups),
		Consistency:  analytics.ComputeConsistency(all, now, cfg.ConsistencyWindowDays, cfg.TargetFrequencyDays),
	}
}

func (s *ContextService) ExerciseProgress(ctx context.Context, exercise string) *ExerciseProgress {
	_, span := tracing.GlobalTracer.Start(ctx, "mcp.service.exercise-progress")
	defer span.End()
	span.SetAttributes(attribute.String("exercise.name", exercise))

	ws, _ := s.workouts.Snapshot()
	series := progress.BuildProgressSeries(ws)[exercise]
	if series == nil {
		series = make([]progress.ProgressPoint, 0)
	}
	improvement := progress.RecentImprovement(exercise, ws)

	return &ExerciseProgress{
		Exercise:          exercise,
		Series:            series,
		RecentImprovement: improvement,
		Trend:             progress.ClassifyChange(improvement),
	}
}

func (s *ContextService) PersonalRecord(ctx context.Context, exercise string) *PersonalRecord {
	_, span := tracing.GlobalTracer.Start(ctx, "mcp.service.personal-record")
	defer span.End()
	span.SetAttributes(attribute.String("exercise.name", exercise))

	ws, _ := s.workouts.Snapshot()
	result := &PersonalRecord{Exercise: exercise}
	if pr, ok := progress.PersonalRecord(exercise, ws); ok {
		result.Found = true
		result.Record = &pr
	}
	return result
}

func (s *ContextService) Recommendations(ctx context.Context, limit int) []recommendations.Recommendation {
	_, span := tracing.GlobalTracer.Start(ctx, "mcp.service.recommendations")
	defer span.End()

	ws, _ := s.workouts.Snapshot()
	recs := s.engine.Generate(ws, s.now())
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	span.SetAttributes(attribute.Int("recommendations.count", len(recs)))
	return recs
}
