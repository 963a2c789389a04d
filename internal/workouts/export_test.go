package workouts_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymdash/internal/workouts"
)

func TestReadExport(t *testing.T) {
	array := `[
		{"id":"a","startTime":"2024-03-01T08:00:00Z","durationMinutes":60,"exercises":[{"exerciseName":"Squats","sets":5,"reps":5,"weight":225,"restTimeSeconds":120}]},
		{"id":"b","startTime":"2024-03-03T08:00:00Z","durationMinutes":45,"exercises":[]}
	]`
	ws, err := workouts.ReadExport(strings.NewReader(array))
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, "a", ws[0].ID)
	assert.Equal(t, 225.0, ws[0].Exercises[0].Weight)

	list := `{"workouts":[{"id":"c","startTime":"2024-03-05T08:00:00Z","durationMinutes":30}],"total":1}`
	ws, err = workouts.ReadExport(strings.NewReader(list))
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "c", ws[0].ID)

	ws, err = workouts.ReadExport(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, ws)

	_, err = workouts.ReadExport(strings.NewReader(`{"workouts":`))
	require.Error(t, err)
}

func TestNewStoreFromExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"old","startTime":"2024-03-01T08:00:00Z","durationMinutes":60},
		{"id":"new","startTime":"2024-03-03T08:00:00Z","durationMinutes":45}
	]`), 0o600))

	store, err := workouts.NewStoreFromExport(path)
	require.NoError(t, err)
	list, version := store.Snapshot()
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	require.NotNil(t, list[0].EndTime)
	assert.Equal(t, uint64(1), version)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`[{"id":"x","durationMinutes":-5}]`), 0o600))
	_, err = workouts.NewStoreFromExport(invalid)
	require.ErrorIs(t, err, workouts.ErrValidation)

	_, err = workouts.NewStoreFromExport(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
