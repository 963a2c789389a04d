package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymdash/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const draftKey = "gymdash::workout-draft"

// DraftCache mirrors the in-progress workout in redis, so a live session
// survives a service restart.
type DraftCache struct {
	redisClient *redis.Client
}

func NewDraftCache(redisClient *redis.Client) *DraftCache {
	return &DraftCache{
		redisClient: redisClient,
	}
}

func (c *DraftCache) Save(ctx context.Context, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.workouts.draft.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	draftJson, err := json.Marshal(workout)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return c.redisClient.Set(ctx, draftKey, string(draftJson), 0).Err()
}

// Load returns the cached draft, or nil when there is none.
func (c *DraftCache) Load(ctx context.Context) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.workouts.draft.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	draftJson, err := c.redisClient.Get(ctx, draftKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	draft := &Workout{}
	if err := json.Unmarshal(draftJson, draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return draft, nil
}

func (c *DraftCache) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.workouts.draft.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.redisClient.Del(ctx, draftKey).Err()
}
