package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymdash/internal/analytics"
	"github.com/2beens/gymdash/internal/catalog"
	gymdashmcp "github.com/2beens/gymdash/internal/mcp"
	"github.com/2beens/gymdash/internal/progress"
	"github.com/2beens/gymdash/internal/recommendations"
	"github.com/2beens/gymdash/internal/workouts"
	gdtesting "github.com/2beens/gymdash/pkg/testing"
)

type staticWorkouts []workouts.Workout

func (s staticWorkouts) Snapshot() ([]workouts.Workout, uint64) {
	return s, 1
}

func newTestService(ws []workouts.Workout, now time.Time) *gymdashmcp.ContextService {
	cat := catalog.Default()
	return gymdashmcp.NewContextService(
		staticWorkouts(ws),
		cat,
		recommendations.NewEngine(recommendations.DefaultConfig(), cat),
		func() time.Time { return now },
	)
}

func TestContextService_WorkoutStats(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	ws := gdtesting.BenchPressScenario(now)
	ws = append(ws, gdtesting.CompletedWorkout("old", now.AddDate(0, -6, 0), 60, gdtesting.Entry("Squats", 5, 5, 225)))
	svc := newTestService(ws, now)

	all := svc.WorkoutStats(context.Background(), analytics.PeriodAllTime)
	assert.Equal(t, analytics.PeriodAllTime, all.Period)
	assert.Equal(t, 4, all.TotalWorkouts)
	assert.Equal(t, 330, all.TotalDurationMinutes)
	assert.Equal(t, 83, all.AverageDurationMinutes)
	assert.Equal(t, 3, all.MuscleGroups["Chest"])
	assert.Equal(t, 1, all.MuscleGroups["Legs"])

	week := svc.WorkoutStats(context.Background(), analytics.PeriodWeek)
	assert.Equal(t, 3, week.TotalWorkouts)
	assert.Equal(t, 90, week.AverageDurationMinutes)
	assert.Equal(t, map[string]int{"Bench Press": 3}, week.ExerciseFrequency)
	assert.Equal(t, 2*(3*8*195.0)+3*8*185.0, week.TotalVolume)
	assert.Greater(t, week.Consistency, 0.0)
}

func TestContextService_ExerciseProgress(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	svc := newTestService(gdtesting.BenchPressScenario(now), now)

	p := svc.ExerciseProgress(context.Background(), "Bench Press")
	require.Len(t, p.Series, 3)
	assert.Equal(t, "bp-1", p.Series[0].WorkoutID)
	assert.Equal(t, 185.0, p.Series[0].Weight)
	assert.Equal(t, 0.0, p.RecentImprovement)
	assert.Equal(t, progress.TrendNoChange, p.Trend)

	unknown := svc.ExerciseProgress(context.Background(), "Lunges")
	assert.NotNil(t, unknown.Series)
	assert.Empty(t, unknown.Series)
}

func TestContextService_PersonalRecord(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	svc := newTestService(gdtesting.BenchPressScenario(now), now)

	pr := svc.PersonalRecord(context.Background(), "Bench Press")
	require.True(t, pr.Found)
	require.NotNil(t, pr.Record)
	assert.Equal(t, 195.0, pr.Record.Weight)
	// first occurrence of the max wins
	assert.Equal(t, "bp-2", pr.Record.WorkoutID)

	missing := svc.PersonalRecord(context.Background(), "Deadlifts")
	assert.False(t, missing.Found)
	assert.Nil(t, missing.Record)
}

func TestContextService_Recommendations(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	empty := newTestService(nil, now)
	assert.NotNil(t, empty.Recommendations(context.Background(), 0))

	var ws []workouts.Workout
	for i := 0; i < 4; i++ {
		ws = append(ws, gdtesting.CompletedWorkout(
			"w",
			now.AddDate(0, 0, -20-i),
			60,
			gdtesting.Entry("Bench Press", 3, 8, 185),
			gdtesting.Entry("Overhead Press", 3, 8, 95),
			gdtesting.Entry("Dips", 3, 10, 0),
		))
	}
	svc := newTestService(ws, now)

	all := svc.Recommendations(context.Background(), 0)
	require.NotEmpty(t, all)
	if len(all) > 1 {
		limited := svc.Recommendations(context.Background(), 1)
		require.Len(t, limited, 1)
		assert.Equal(t, all[0], limited[0])
	}
}
