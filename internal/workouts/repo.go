package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// postgres default name for the workout id constraint
	workoutPrimaryKey = "workout_pkey"
	pgUndefinedTable  = "42P01"
)

// Schema creates the table used by Repo.
const Schema = `
CREATE TABLE IF NOT EXISTS workout (
	id               TEXT PRIMARY KEY,
	start_time       TIMESTAMPTZ NOT NULL,
	end_time         TIMESTAMPTZ NOT NULL,
	duration_minutes INTEGER NOT NULL CHECK (duration_minutes >= 0),
	exercises        JSONB NOT NULL DEFAULT '[]'::jsonb,
	notes            TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS workout_start_time_idx ON workout (start_time DESC);
`

// Repo persists completed workouts in PostgreSQL. It is only a sync
// target: the Store stays the source of truth while the process runs.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Migrate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, Schema)
	return err
}

func (r *Repo) Add(ctx context.Context, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))
	span.SetAttributes(attribute.Int("workout.exercises", len(workout.Exercises)))

	if workout.EndTime == nil {
		return fmt.Errorf("add workout [%s]: %w", workout.ID, ErrInvalidState)
	}

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout
				(id, start_time, end_time, duration_minutes, exercises, notes)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		workout.ID, workout.StartTime, *workout.EndTime, workout.DurationMinutes, exercisesJson, workout.Notes,
	)
	if pkg.IsUniqueViolationError(err, workoutPrimaryKey) {
		// already synced, workouts are immutable once completed
		log.Debugf("workout [%s] already stored", workout.ID)
		return nil
	}
	return err
}

// Delete is idempotent, same as Store.DeleteWorkout.
func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	_, err = r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1`, id)
	return err
}

// ListAll returns all stored workouts, most recent first.
func (r *Repo) ListAll(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, start_time, end_time, duration_minutes, exercises, notes
			FROM workout
			ORDER BY start_time DESC;`,
	)
	if code, ok := pkg.PgErrorCode(err); ok && code == pgUndefinedTable {
		return nil, fmt.Errorf("workout table missing, run Migrate first: %w", err)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		var (
			w             Workout
			endTime       time.Time
			exercisesJson []byte
		)
		if err := rows.Scan(&w.ID, &w.StartTime, &endTime, &w.DurationMinutes, &exercisesJson, &w.Notes); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &w.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises of [%s]: %w", w.ID, err)
		}
		if w.Exercises == nil {
			w.Exercises = make([]ExerciseEntry, 0)
		}
		w.EndTime = &endTime
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}
