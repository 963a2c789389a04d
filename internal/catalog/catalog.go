package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

type Movement string

const (
	MovementPush Movement = "push"
	MovementPull Movement = "pull"
	MovementLegs Movement = "legs"
	MovementCore Movement = "core"
)

func (m Movement) valid() bool {
	switch m {
	case MovementPush, MovementPull, MovementLegs, MovementCore:
		return true
	}
	return false
}

var ErrInvalidCatalog = errors.New("invalid catalog")

type Exercise struct {
	Name        string   `toml:"name" json:"name"`
	MuscleGroup string   `toml:"muscle_group" json:"muscleGroup"`
	Movement    Movement `toml:"movement" json:"movement"`
}

// Catalog maps exercise names to their muscle group and movement pattern.
// Lookups are exact (case sensitive), same as exercise frequency counting.
type Catalog struct {
	exercises map[string]Exercise
}

type catalogToml struct {
	Exercise []Exercise `toml:"exercise"`
}

func New(exercises []Exercise) (*Catalog, error) {
	c := &Catalog{
		exercises: make(map[string]Exercise, len(exercises)),
	}
	for i, e := range exercises {
		e.Name = strings.TrimSpace(e.Name)
		e.Movement = Movement(strings.ToLower(string(e.Movement)))
		if e.Name == "" {
			return nil, fmt.Errorf("exercise [%d]: empty name: %w", i, ErrInvalidCatalog)
		}
		if e.MuscleGroup == "" {
			return nil, fmt.Errorf("exercise [%s]: empty muscle group: %w", e.Name, ErrInvalidCatalog)
		}
		if e.Movement != "" && !e.Movement.valid() {
			return nil, fmt.Errorf("exercise [%s]: unknown movement [%s]: %w", e.Name, e.Movement, ErrInvalidCatalog)
		}
		if _, ok := c.exercises[e.Name]; ok {
			return nil, fmt.Errorf("exercise [%s]: duplicate: %w", e.Name, ErrInvalidCatalog)
		}
		c.exercises[e.Name] = e
	}
	return c, nil
}

// Load reads a catalog from a TOML file with [[exercise]] tables.
func Load(path string) (*Catalog, error) {
	var parsed catalogToml
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return New(parsed.Exercise)
}

// Default is the built-in catalog, used when no catalog file is configured.
func Default() *Catalog {
	c, err := New(defaultExercises)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultExercises = []Exercise{
	{Name: "Bench Press", MuscleGroup: "Chest", Movement: MovementPush},
	{Name: "Incline Press", MuscleGroup: "Chest", Movement: MovementPush},
	{Name: "Dips", MuscleGroup: "Chest", Movement: MovementPush},
	{Name: "Overhead Press", MuscleGroup: "Shoulders", Movement: MovementPush},
	{Name: "Squats", MuscleGroup: "Legs", Movement: MovementLegs},
	{Name: "Deadlifts", MuscleGroup: "Back", Movement: MovementPull},
	{Name: "Pull-ups", MuscleGroup: "Back", Movement: MovementPull},
	{Name: "Rows", MuscleGroup: "Back", Movement: MovementPull},
}

func (c *Catalog) MuscleGroup(exerciseName string) (string, bool) {
	e, ok := c.exercises[exerciseName]
	if !ok {
		return "", false
	}
	return e.MuscleGroup, true
}

// Movement returns the movement pattern; exercises listed without one
// report false, same as unknown exercises.
func (c *Catalog) Movement(exerciseName string) (Movement, bool) {
	e, ok := c.exercises[exerciseName]
	if !ok || e.Movement == "" {
		return "", false
	}
	return e.Movement, true
}

// Exercises returns all catalog entries sorted by name.
func (c *Catalog) Exercises() []Exercise {
	res := make([]Exercise, 0, len(c.exercises))
	for _, e := range c.exercises {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}
