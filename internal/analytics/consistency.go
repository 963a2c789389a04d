package analytics

import (
	"time"

	"github.com/2beens/gymdash/internal/workouts"
	"github.com/2beens/gymdash/pkg"
)

const (
	DefaultConsistencyWindowDays = 28
	DefaultTargetFrequencyDays   = 2
)

// ComputeConsistency is the share of expected training days actually
// trained in the trailing window (now-windowDays, now]. The expected count is
// windowDays / targetFrequencyDays, and the result is clamped to [0, 1].
// Days are UTC calendar days; in-progress workouts do not count.
func ComputeConsistency(ws []workouts.Workout, now time.Time, windowDays int, targetFrequencyDays float64) float64 {
	if windowDays <= 0 || targetFrequencyDays <= 0 {
		return 0
	}

	windowStart := now.Add(-time.Duration(windowDays) * 24 * time.Hour)
	days := make(map[time.Time]struct{})
	for _, w := range ws {
		if w.InProgress() {
			continue
		}
		if !w.StartTime.After(windowStart) || w.StartTime.After(now) {
			continue
		}
		day := pkg.StartOfDay(w.StartTime)
		days[day] = struct{}{}
	}

	expected := float64(windowDays) / targetFrequencyDays
	consistency := float64(len(days)) / expected
	switch {
	case consistency > 1:
		return 1
	case consistency < 0:
		return 0
	}
	return consistency
}
