package workouts_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymdash/internal/workouts"
	gdtesting "github.com/2beens/gymdash/pkg/testing"
)

const draftKey = "gymdash::workout-draft"

func TestDraftCache_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	cache := workouts.NewDraftCache(db)

	draft := workouts.Workout{
		ID:        "draft-1",
		StartTime: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
		Exercises: []workouts.ExerciseEntry{benchPress(185)},
	}
	draftJson, err := json.Marshal(draft)
	require.NoError(t, err)

	mock.ExpectSet(draftKey, string(draftJson), 0).SetVal("OK")
	require.NoError(t, cache.Save(context.Background(), draft))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftCache_Load(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	cache := workouts.NewDraftCache(db)

	draft := workouts.Workout{
		ID:        "draft-1",
		StartTime: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
		Exercises: []workouts.ExerciseEntry{benchPress(185)},
	}
	draftJson, err := json.Marshal(draft)
	require.NoError(t, err)

	mock.ExpectGet(draftKey).SetVal(string(draftJson))
	loaded, err := cache.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.True(t, loaded.InProgress())
	assert.Equal(t, draft.Exercises, loaded.Exercises)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftCache_Load_NoDraft(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	cache := workouts.NewDraftCache(db)

	mock.ExpectGet(draftKey).RedisNil()
	loaded, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftCache_Load_Errors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	cache := workouts.NewDraftCache(db)

	mock.ExpectGet(draftKey).SetErr(errors.New("connection reset"))
	loaded, err := cache.Load(context.Background())
	assert.Nil(t, loaded)
	assert.EqualError(t, err, "connection reset")

	mock.ExpectGet(draftKey).SetVal("{not json")
	loaded, err = cache.Load(context.Background())
	assert.Nil(t, loaded)
	assert.ErrorContains(t, err, "unmarshal draft")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftCache_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	cache := workouts.NewDraftCache(db)

	mock.ExpectDel(draftKey).SetVal(1)
	require.NoError(t, cache.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftCache_LiveRedis(t *testing.T) {
	ctx, rdb := gdtesting.GetRedisClientAndCtx(t)
	cache := workouts.NewDraftCache(rdb)
	t.Cleanup(func() {
		_ = cache.Clear(context.Background())
	})

	draft := workouts.Workout{
		ID:        "live-draft",
		StartTime: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
		Exercises: []workouts.ExerciseEntry{benchPress(155)},
	}
	require.NoError(t, cache.Save(ctx, draft))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.True(t, draft.StartTime.Equal(loaded.StartTime))
	assert.Equal(t, draft.Exercises, loaded.Exercises)

	require.NoError(t, cache.Clear(ctx))
	loaded, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
