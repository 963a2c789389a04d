package recommendations

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymdash/internal/analytics"
	"github.com/2beens/gymdash/internal/catalog"
	"github.com/2beens/gymdash/internal/progress"
	"github.com/2beens/gymdash/internal/workouts"
)

type MovementLookup interface {
	Movement(exerciseName string) (catalog.Movement, bool)
}

type Config struct {
	// PlateauWindow is how many trailing entries must share a weight.
	PlateauWindow int `toml:"plateau_window"`
	// ImbalanceRatio: push entries above pull entries times this ratio fire.
	ImbalanceRatio    float64 `toml:"imbalance_ratio"`
	BalanceWindowDays int     `toml:"balance_window_days"`
	// RecoverySessions is K, the number of consecutive volume increases.
	RecoverySessions      int     `toml:"recovery_sessions"`
	RecoveryRestThreshold float64 `toml:"recovery_rest_threshold"`
	ConsistencyTarget     float64 `toml:"consistency_target"`
	ConsistencyWindowDays int     `toml:"consistency_window_days"`
	TargetFrequencyDays   float64 `toml:"target_frequency_days"`
}

func DefaultConfig() Config {
	return Config{
		PlateauWindow:         3,
		ImbalanceRatio:        1.4,
		BalanceWindowDays:     28,
		RecoverySessions:      5,
		RecoveryRestThreshold: 0,
		ConsistencyTarget:     0.8,
		ConsistencyWindowDays: analytics.DefaultConsistencyWindowDays,
		TargetFrequencyDays:   analytics.DefaultTargetFrequencyDays,
	}
}

// withDefaults fills in unset fields. RecoveryRestThreshold has a zero
// default, so it is always taken as given. A ConsistencyTarget of 0 affirms
// any history; only a negative target falls back to the default.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PlateauWindow <= 0 {
		c.PlateauWindow = d.PlateauWindow
	}
	if c.ImbalanceRatio <= 0 {
		c.ImbalanceRatio = d.ImbalanceRatio
	}
	if c.BalanceWindowDays <= 0 {
		c.BalanceWindowDays = d.BalanceWindowDays
	}
	if c.RecoverySessions <= 0 {
		c.RecoverySessions = d.RecoverySessions
	}
	if c.ConsistencyTarget < 0 {
		c.ConsistencyTarget = d.ConsistencyTarget
	}
	if c.ConsistencyWindowDays <= 0 {
		c.ConsistencyWindowDays = d.ConsistencyWindowDays
	}
	if c.TargetFrequencyDays <= 0 {
		c.TargetFrequencyDays = d.TargetFrequencyDays
	}
	return c
}

// Engine evaluates the recommendation rules over a workouts snapshot.
// It holds no state besides its configuration and is safe for concurrent use.
type Engine struct {
	cfg       Config
	movements MovementLookup
}

// NewEngine creates an engine; without a movement lookup the push/pull
// balance rule never fires.
func NewEngine(cfg Config, movements MovementLookup) *Engine {
	return &Engine{
		cfg:       cfg.withDefaults(),
		movements: movements,
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Generate runs every rule and returns all matches, highest priority first.
// Sparse or empty history simply fires fewer rules.
func (e *Engine) Generate(ws []workouts.Workout, now time.Time) []Recommendation {
	completed := make([]workouts.Workout, 0, len(ws))
	for _, w := range ws {
		if !w.InProgress() {
			completed = append(completed, w)
		}
	}

	recs := make([]Recommendation, 0)
	recs = append(recs, e.plateaus(completed)...)
	if rec, ok := e.imbalance(completed, now); ok {
		recs = append(recs, rec)
	}
	if rec, ok := e.recoveryRisk(completed); ok {
		recs = append(recs, rec)
	}
	if rec, ok := e.consistency(completed, now); ok {
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority.rank() != recs[j].Priority.rank() {
			return recs[i].Priority.rank() > recs[j].Priority.rank()
		}
		if recs[i].rule != recs[j].rule {
			return recs[i].rule < recs[j].rule
		}
		return recs[i].Exercise < recs[j].Exercise
	})
	return recs
}

const (
	rulePlateau = iota
	ruleImbalance
	ruleRecovery
	ruleConsistency
)

func (e *Engine) plateaus(ws []workouts.Workout) []Recommendation {
	series := progress.BuildProgressSeries(ws)
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	n := e.cfg.PlateauWindow
	recs := make([]Recommendation, 0)
	for _, name := range names {
		points := series[name]
		if len(points) < n {
			continue
		}
		last := points[len(points)-n:]
		plateau := true
		for _, p := range last[1:] {
			if p.Weight != last[0].Weight {
				plateau = false
				break
			}
		}
		if !plateau {
			continue
		}

		recs = append(recs, Recommendation{
			Kind:        KindProgressiveOverload,
			Title:       fmt.Sprintf("Progressive overload: %s", name),
			Description: fmt.Sprintf("%s has stayed at %g for the last %d sessions.", name, last[0].Weight, n),
			Priority:    PriorityHigh,
			Action:      fmt.Sprintf("Add a small increment to %s next session, or add a rep per set.", name),
			Confidence:  ConfidencePlateau,
			Exercise:    name,
			rule:        rulePlateau,
		})
	}
	return recs
}

func (e *Engine) imbalance(ws []workouts.Workout, now time.Time) (Recommendation, bool) {
	if e.movements == nil {
		return Recommendation{}, false
	}

	since := now.AddDate(0, 0, -e.cfg.BalanceWindowDays)
	push, pull := 0, 0
	for _, w := range ws {
		if w.StartTime.Before(since) || w.StartTime.After(now) {
			continue
		}
		for _, entry := range w.Exercises {
			movement, ok := e.movements.Movement(entry.ExerciseName)
			if !ok {
				continue
			}
			switch movement {
			case catalog.MovementPush:
				push++
			case catalog.MovementPull:
				pull++
			}
		}
	}

	if push == 0 || float64(push) <= float64(pull)*e.cfg.ImbalanceRatio {
		return Recommendation{}, false
	}

	return Recommendation{
		Kind:  KindBalance,
		Title: "Balance pushing and pulling",
		Description: fmt.Sprintf(
			"%d pushing vs %d pulling exercises in the last %d days.",
			push, pull, e.cfg.BalanceWindowDays,
		),
		Priority:   PriorityMedium,
		Action:     "Add rows, pull-ups or deadlifts to the next sessions.",
		Confidence: ConfidenceImbalance,
		rule:       ruleImbalance,
	}, true
}

func (e *Engine) recoveryRisk(ws []workouts.Workout) (Recommendation, bool) {
	k := e.cfg.RecoverySessions
	if len(ws) < k+1 {
		return Recommendation{}, false
	}

	sessions := workouts.Chronological(ws)
	sessions = sessions[len(sessions)-(k+1):]

	prev := sessions[0].Volume()
	if prev <= e.cfg.RecoveryRestThreshold {
		return Recommendation{}, false
	}
	for _, s := range sessions[1:] {
		v := s.Volume()
		if v <= prev || v <= e.cfg.RecoveryRestThreshold {
			return Recommendation{}, false
		}
		prev = v
	}

	return Recommendation{
		Kind:        KindRecovery,
		Title:       "Plan a recovery session",
		Description: fmt.Sprintf("Training volume went up in each of the last %d sessions.", k),
		Priority:    PriorityLow,
		Action:      "Schedule a deload or rest day before the next heavy session.",
		Confidence:  ConfidenceRecovery,
		rule:        ruleRecovery,
	}, true
}

func (e *Engine) consistency(ws []workouts.Workout, now time.Time) (Recommendation, bool) {
	consistency := analytics.ComputeConsistency(ws, now, e.cfg.ConsistencyWindowDays, e.cfg.TargetFrequencyDays)
	if consistency < e.cfg.ConsistencyTarget {
		return Recommendation{}, false
	}

	return Recommendation{
		Kind:  KindConsistency,
		Title: "Great consistency",
		Description: fmt.Sprintf(
			"You hit %.0f%% of your planned sessions over the last %d days.",
			consistency*100, e.cfg.ConsistencyWindowDays,
		),
		Priority:   PriorityLow,
		Action:     "Keep the current schedule.",
		Confidence: ConfidenceConsistency,
		rule:       ruleConsistency,
	}, true
}
