package workouts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadExport decodes workouts from either a bare JSON array or a
// ListResponse, i.e. the body of GET /workouts.
func ReadExport(r io.Reader) ([]Workout, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return make([]Workout, 0), nil
	}

	if raw[0] == '[' {
		var workouts []Workout
		if err := json.Unmarshal(raw, &workouts); err != nil {
			return nil, fmt.Errorf("decode workouts array: %w", err)
		}
		return workouts, nil
	}

	var listResp ListResponse
	if err := json.Unmarshal(raw, &listResp); err != nil {
		return nil, fmt.Errorf("decode workouts list: %w", err)
	}
	if listResp.Workouts == nil {
		listResp.Workouts = make([]Workout, 0)
	}
	return listResp.Workouts, nil
}

func ReadExportFile(path string) ([]Workout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()
	return ReadExport(f)
}

// NewStoreFromExport loads a read only snapshot, e.g. for the CLI tools.
func NewStoreFromExport(path string) (*Store, error) {
	ws, err := ReadExportFile(path)
	if err != nil {
		return nil, err
	}
	store := NewStore()
	if err := store.Load(ws); err != nil {
		return nil, err
	}
	return store, nil
}
