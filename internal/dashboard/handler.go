package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/2beens/gymdash/internal/analytics"
	"github.com/2beens/gymdash/internal/progress"
	"github.com/2beens/gymdash/internal/recommendations"
	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/internal/workouts"
	"github.com/2beens/gymdash/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type workoutsSnapshot interface {
	Snapshot() ([]workouts.Workout, uint64)
}

const (
	megabyte  = 1024 * 1024
	cacheSize = 10 * megabyte
	// responses also depend on the current time (trailing windows), so
	// entries expire even when the store does not change
	cacheExpireSeconds = 60

	orderChronological = "chronological"
	orderRecentFirst   = "recent_first"
)

type Handler struct {
	workouts       workoutsSnapshot
	muscleGroups   analytics.MuscleGroupLookup
	engine         *recommendations.Engine
	cache          *freecache.Cache
	metricsManager *metrics.Manager
	now            func() time.Time
}

type NewHandlerParams struct {
	Workouts       workoutsSnapshot
	MuscleGroups   analytics.MuscleGroupLookup
	Engine         *recommendations.Engine
	MetricsManager *metrics.Manager
	Clock          func() time.Time // optional, defaults to time.Now
}

func NewHandler(params NewHandlerParams) *Handler {
	now := params.Clock
	if now == nil {
		now = time.Now
	}
	return &Handler{
		workouts:       params.Workouts,
		muscleGroups:   params.MuscleGroups,
		engine:         params.Engine,
		cache:          freecache.NewCache(cacheSize),
		metricsManager: params.MetricsManager,
		now:            now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")
	r.HandleFunc("/dashboard/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("dashboard-stats")
	r.HandleFunc("/dashboard/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("dashboard-volume")
	r.HandleFunc("/dashboard/muscle-groups", handler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("dashboard-muscle-groups")
	r.HandleFunc("/dashboard/consistency", handler.HandleConsistency).Methods("GET", "OPTIONS").Name("dashboard-consistency")
	r.HandleFunc("/dashboard/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("dashboard-progress")
	r.HandleFunc("/dashboard/progress/{exercise}", handler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("dashboard-exercise-progress")
	r.HandleFunc("/dashboard/records", handler.HandleRecords).Methods("GET", "OPTIONS").Name("dashboard-records")
	r.HandleFunc("/dashboard/recommendations", handler.HandleRecommendations).Methods("GET", "OPTIONS").Name("dashboard-recommendations")
}

type computeFunc func(ws []workouts.Workout, now time.Time) any

// serveCached answers from the response cache, keyed by the store version
// and the request URI, and computes + caches the response on a miss.
func (handler *Handler) serveCached(w http.ResponseWriter, r *http.Request, span trace.Span, compute computeFunc) {
	ws, version := handler.workouts.Snapshot()
	cacheKey := []byte(fmt.Sprintf("%d::%s", version, r.URL.RequestURI()))
	span.SetAttributes(attribute.Int64("workouts.version", int64(version)))

	if respJson, err := handler.cache.Get(cacheKey); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		handler.metricsManager.CounterDashboardCacheHits.Inc()
		pkg.WriteJSONResponseBytesOK(w, respJson)
		return
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))
	handler.metricsManager.CounterDashboardCacheMisses.Inc()

	resp := compute(ws, handler.now())
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("dashboard: marshal response for [%s]: %s", r.URL.Path, err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, respJson, cacheExpireSeconds); err != nil {
		log.Errorf("dashboard: set cache for [%s]: %s", r.URL.Path, err)
	}
	pkg.WriteJSONResponseBytesOK(w, respJson)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	handler.serveCached(w, r, span, func(ws []workouts.Workout, now time.Time) any {
		cfg := handler.engine.Config()
		stats := analytics.ComputeStats(ws)
		return SummaryResponse{
			TotalWorkouts:          stats.TotalWorkouts,
			WorkoutsThisWeek:       analytics.WorkoutsSince(ws, now.AddDate(0, 0, -7)),
			AverageDurationMinutes: stats.AverageDurationMinutes,
			TotalVolume:            analytics.TotalVolume(ws),
			PRsThisMonth:           len(progress.RecordsSince(ws, startOfMonth(now))),
			Consistency:            analytics.ComputeConsistency(ws, now, cfg.ConsistencyWindowDays, cfg.TargetFrequencyDays),
		}
	})
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.stats")
	defer span.End()

	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("period", string(period)))

	handler.serveCached(w, r, span, func(ws []workouts.Workout, now time.Time) any {
		ws = analytics.FilterByPeriod(ws, period, now)
		return StatsResponse{
			Period:      period,
			Stats:       analytics.ComputeStats(ws),
			TotalVolume: analytics.TotalVolume(ws),
			Exercises:   analytics.ComputeExerciseSummaries(ws),
		}
	})
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.volume")
	defer span.End()

	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order := r.URL.Query().Get("order")
	switch order {
	case "":
		order = orderRecentFirst
	case orderRecentFirst, orderChronological:
	default:
		http.Error(w, fmt.Sprintf("unknown order: %s", order), http.StatusBadRequest)
		return
	}

	handler.serveCached(w, r, span, func(ws []workouts.Workout, now time.Time) any {
		points := analytics.ComputeVolumeSeries(analytics.FilterByPeriod(ws, period, now))
		if order == orderChronological {
			slices.Reverse(points)
		}
		return VolumeResponse{
			Period: period,
			Order:  order,
			Points: points,
		}
	})
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.muscle-groups")
	defer span.End()

	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	handler.serveCached(w, r, span, func(ws []workouts.Workout, now time.Time) any {
		return MuscleGroupsResponse{
			Period:       period,
			Distribution: analytics.ComputeMuscleGroupDistribution(analytics.FilterByPeriod(ws, period, now), handler.muscleGroups),
		}
	})
}

func (handler *Handler) HandleConsistency(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.consistency")
	defer span.End()

	cfg := handler.engine.Config()
	windowDays := cfg.ConsistencyWindowDays
	if windowDaysParam := r.URL.Query().Get("window_days"); windowDaysParam != "" {
		var err error
		windowDays, err = strconv.Atoi(windowDaysParam)
		if err != nil || windowDays <= 0 {
			http.Error(w, "invalid window_days", http.StatusBadRequest)
			return
		}
	}
	span.SetAttributes(attribute.Int("window_days", windowDays))

	handler.serveCached(w, r, span, func(ws []workouts.Workout, now time.Time) any {
		return ConsistencyResponse{
			WindowDays:          windowDays,
			TargetFrequencyDays: cfg.TargetFrequencyDays,
			Consistency:         analytics.ComputeConsistency(ws, now, windowDays, cfg.TargetFrequencyDays),
		}
	})
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.progress")
	defer span.End()

	handler.serveCached(w, r, span, func(ws []workouts.Workout, _ time.Time) any {
		return ProgressResponse{
			Series:   progress.BuildProgressSeries(ws),
			Strength: progress.Strength(ws),
		}
	})
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.exercise-progress")
	defer span.End()

	exercise := mux.Vars(r)["exercise"]
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("exercise.name", exercise))

	handler.serveCached(w, r, span, func(ws []workouts.Workout, _ time.Time) any {
		resp := ExerciseProgressResponse{
			Exercise: exercise,
			Series:   progress.BuildProgressSeries(ws)[exercise],
		}
		if resp.Series == nil {
			resp.Series = make([]progress.ProgressPoint, 0)
		}
		if pr, ok := progress.PersonalRecord(exercise, ws); ok {
			resp.PersonalRecord = &pr
		}
		resp.RecentImprovement = progress.RecentImprovement(exercise, ws)
		resp.Trend = progress.ClassifyChange(resp.RecentImprovement)
		return resp
	})
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.records")
	defer span.End()

	var since *time.Time
	if sinceParam := r.URL.Query().Get("since"); sinceParam != "" {
		parsed, err := pkg.ParseDate(sinceParam)
		if err != nil {
			http.Error(w, "invalid since date, expected "+pkg.DateLayout, http.StatusBadRequest)
			return
		}
		since = &parsed
	}

	handler.serveCached(w, r, span, func(ws []workouts.Workout, now time.Time) any {
		from := startOfMonth(now)
		if since != nil {
			from = *since
		}
		return RecordsResponse{
			Since:           from,
			Records:         progress.RecordsSince(ws, from),
			PersonalRecords: progress.PersonalRecords(ws),
		}
	})
}

func (handler *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.recommendations")
	defer span.End()

	handler.serveCached(w, r, span, func(ws []workouts.Workout, now time.Time) any {
		recs := handler.engine.Generate(ws, now)
		for _, rec := range recs {
			handler.metricsManager.CounterRecommendations.WithLabelValues(string(rec.Kind), string(rec.Priority)).Inc()
		}
		span.SetAttributes(attribute.Int("recommendations.count", len(recs)))
		return RecommendationsResponse{
			GeneratedAt:     now,
			Recommendations: recs,
		}
	})
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
