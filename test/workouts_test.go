package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymdash/internal/dashboard"
	"github.com/2beens/gymdash/internal/workouts"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (*http.Response, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, respBytes
}

func (s *IntegrationTestSuite) countStoredWorkouts(ctx context.Context, id string) int {
	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM workout WHERE id = $1`, id).Scan(&count)
	s.Require().NoError(err)
	return count
}

func (s *IntegrationTestSuite) TestLiveWorkout_PersistedAndSurvivesRestart() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	resp, respBytes := s.doRequest(ctx, "POST", "/workouts/start", nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(respBytes))
	var started workouts.Workout
	s.Require().NoError(json.Unmarshal(respBytes, &started))
	s.NotEmpty(started.ID)

	resp, respBytes = s.doRequest(ctx, "POST", "/workouts/active/exercises", workouts.ExerciseEntry{
		ExerciseName: "Deadlift",
		Sets:         3,
		Reps:         5,
		Weight:       315,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))

	// the draft lives in redis, so a restarted server picks it up again
	s.restartServer()

	resp, respBytes = s.doRequest(ctx, "GET", "/workouts/active", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	var active workouts.Workout
	s.Require().NoError(json.Unmarshal(respBytes, &active))
	s.Equal(started.ID, active.ID)
	s.Require().Len(active.Exercises, 1)
	s.Equal("Deadlift", active.Exercises[0].ExerciseName)

	resp, respBytes = s.doRequest(ctx, "POST", "/workouts/active/complete", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	s.Equal(1, s.countStoredWorkouts(ctx, started.ID))

	resp, _ = s.doRequest(ctx, "GET", "/workouts/active", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// completed workouts are reloaded from postgres
	s.restartServer()

	resp, respBytes = s.doRequest(ctx, "GET", "/workouts/"+started.ID, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	var completed workouts.Workout
	s.Require().NoError(json.Unmarshal(respBytes, &completed))
	s.NotNil(completed.EndTime)
	s.Require().Len(completed.Exercises, 1)
	s.Equal(315.0, completed.Exercises[0].Weight)

	resp, respBytes = s.doRequest(ctx, "DELETE", "/workouts/"+started.ID, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	var delResp workouts.DeleteWorkoutResponse
	s.Require().NoError(json.Unmarshal(respBytes, &delResp))
	s.True(delResp.Removed)
	s.Equal(0, s.countStoredWorkouts(ctx, started.ID))
}

func (s *IntegrationTestSuite) TestLoggedWorkouts_Dashboard() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now().UTC()
	ids := make([]string, 0, 3)
	for i, weight := range []float64{185, 190, 195} {
		resp, respBytes := s.doRequest(ctx, "POST", "/workouts", workouts.Workout{
			StartTime:       now.Add(-time.Duration(3-i) * 24 * time.Hour),
			DurationMinutes: 60,
			Exercises: []workouts.ExerciseEntry{
				{ExerciseName: "Bench Press", Sets: 3, Reps: 8, Weight: weight},
			},
		})
		s.Require().Equal(http.StatusCreated, resp.StatusCode, string(respBytes))
		var logged workouts.Workout
		s.Require().NoError(json.Unmarshal(respBytes, &logged))
		ids = append(ids, logged.ID)
		s.Equal(1, s.countStoredWorkouts(ctx, logged.ID))
	}
	defer func() {
		for _, id := range ids {
			s.doRequest(ctx, "DELETE", "/workouts/"+id, nil)
		}
	}()

	resp, respBytes := s.doRequest(ctx, "GET", "/dashboard/stats?period=week", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	var stats dashboard.StatsResponse
	s.Require().NoError(json.Unmarshal(respBytes, &stats))
	s.Equal(3, stats.TotalWorkouts)
	s.Equal(60, stats.AverageDurationMinutes)
	s.Equal(3, stats.ExerciseFrequency["Bench Press"])
	s.Equal(3*8*(185.0+190+195), stats.TotalVolume)

	resp, respBytes = s.doRequest(ctx, "GET", "/dashboard/progress/"+"Bench%20Press", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	var progressResp dashboard.ExerciseProgressResponse
	s.Require().NoError(json.Unmarshal(respBytes, &progressResp))
	s.Len(progressResp.Series, 3)
	s.Require().NotNil(progressResp.PersonalRecord)
	s.Equal(195.0, progressResp.PersonalRecord.Weight)

	resp, respBytes = s.doRequest(ctx, "GET", "/dashboard/summary", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	var summary dashboard.SummaryResponse
	s.Require().NoError(json.Unmarshal(respBytes, &summary))
	s.Equal(3, summary.TotalWorkouts)
	s.Equal(3, summary.WorkoutsThisWeek)

	resp, respBytes = s.doRequest(ctx, "GET", "/dashboard/recommendations", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(respBytes))
	var recsResp dashboard.RecommendationsResponse
	s.Require().NoError(json.Unmarshal(respBytes, &recsResp))
	// push only history
	s.NotEmpty(recsResp.Recommendations)
}

func (s *IntegrationTestSuite) TestDashboard_InvalidPeriod() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, respBytes := s.doRequest(ctx, "GET", "/dashboard/stats?period=decade", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode, fmt.Sprintf("body: %s", respBytes))
}
