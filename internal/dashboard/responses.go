package dashboard

import (
	"time"

	"github.com/2beens/gymdash/internal/analytics"
	"github.com/2beens/gymdash/internal/progress"
	"github.com/2beens/gymdash/internal/recommendations"
)

type StatsResponse struct {
	Period analytics.Period `json:"period"`
	analytics.Stats
	TotalVolume float64                     `json:"totalVolume"`
	Exercises   []analytics.ExerciseSummary `json:"exercises"`
}

type VolumeResponse struct {
	Period analytics.Period        `json:"period"`
	Order  string                  `json:"order"`
	Points []analytics.VolumePoint `json:"points"`
}

type MuscleGroupsResponse struct {
	Period       analytics.Period `json:"period"`
	Distribution map[string]int   `json:"distribution"`
}

type ConsistencyResponse struct {
	WindowDays          int     `json:"windowDays"`
	TargetFrequencyDays float64 `json:"targetFrequencyDays"`
	Consistency         float64 `json:"consistency"`
}

type ProgressResponse struct {
	Series   map[string][]progress.ProgressPoint `json:"series"`
	Strength []progress.StrengthProgress         `json:"strength"`
}

type ExerciseProgressResponse struct {
	Exercise          string                   `json:"exercise"`
	Series            []progress.ProgressPoint `json:"series"`
	PersonalRecord    *progress.ProgressPoint  `json:"personalRecord"`
	RecentImprovement float64                  `json:"recentImprovement"`
	Trend             progress.Trend           `json:"trend"`
}

type RecordsResponse struct {
	Since           time.Time                         `json:"since"`
	Records         []progress.RecordEvent            `json:"records"`
	PersonalRecords map[string]progress.ProgressPoint `json:"personalRecords"`
}

type RecommendationsResponse struct {
	GeneratedAt     time.Time                        `json:"generatedAt"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
}

// SummaryResponse carries the dashboard cards.
type SummaryResponse struct {
	TotalWorkouts          int     `json:"totalWorkouts"`
	WorkoutsThisWeek       int     `json:"workoutsThisWeek"`
	AverageDurationMinutes int     `json:"averageDurationMinutes"`
	TotalVolume            float64 `json:"totalVolume"`
	PRsThisMonth           int     `json:"prsThisMonth"`
	Consistency            float64 `json:"consistency"`
}
