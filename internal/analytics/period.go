package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymdash/internal/workouts"
)

type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAllTime Period = "all_time"
)

// ParsePeriod accepts the period names case-insensitively; an empty
// string means all time.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAllTime, nil
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodAllTime:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period: %s", s)
	}
}

// Days is the trailing window length, 0 for all time.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodQuarter:
		return 90
	case PeriodYear:
		return 365
	default:
		return 0
	}
}

// FilterByPeriod keeps the workouts started within the trailing period,
// preserving input order.
func FilterByPeriod(ws []workouts.Workout, period Period, now time.Time) []workouts.Workout {
	days := period.Days()
	if days == 0 {
		return ws
	}

	since := now.AddDate(0, 0, -days)
	filtered := make([]workouts.Workout, 0, len(ws))
	for _, w := range ws {
		if !w.StartTime.Before(since) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
