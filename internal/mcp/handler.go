package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/2beens/gymdash/internal/analytics"
	"github.com/2beens/gymdash/internal/recommendations"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextService interface {
	WorkoutStats(ctx context.Context, period analytics.Period) *WorkoutStats
	ExerciseProgress(ctx context.Context, exercise string) *ExerciseProgress
	PersonalRecord(ctx context.Context, exercise string) *PersonalRecord
	Recommendations(ctx context.Context, limit int) []recommendations.Recommendation
}

// Handler handles MCP tool requests: parses input, calls the service, formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// WorkoutStatsInput is the input for get_workout_stats.
type WorkoutStatsInput struct {
	Period string `json:"period,omitempty" jsonschema:"One of week, month, quarter, year, all_time (default all_time)"`
}

// GetWorkoutStatsTool returns the MCP tool handler for get_workout_stats.
func (h *Handler) GetWorkoutStatsTool() func(context.Context, *mcp.CallToolRequest, WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
		period, err := analytics.ParsePeriod(in.Period)
		if err != nil {
			return errorResult("Invalid period: use week, month, quarter, year or all_time"), nil, nil
		}
		return jsonResult(h.service.WorkoutStats(ctx, period)), nil, nil
	}
}

// ExerciseInput is the input for the per exercise tools.
type ExerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exact exercise name as logged (e.g. Bench Press)"`
}

// GetExerciseProgressTool returns the MCP tool handler for get_exercise_progress.
func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		exercise := strings.TrimSpace(in.Exercise)
		if exercise == "" {
			return errorResult("Missing exercise name"), nil, nil
		}
		return jsonResult(h.service.ExerciseProgress(ctx, exercise)), nil, nil
	}
}

// GetPersonalRecordTool returns the MCP tool handler for get_personal_record.
func (h *Handler) GetPersonalRecordTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		exercise := strings.TrimSpace(in.Exercise)
		if exercise == "" {
			return errorResult("Missing exercise name"), nil, nil
		}
		return jsonResult(h.service.PersonalRecord(ctx, exercise)), nil, nil
	}
}

// RecommendationsInput is the input for get_recommendations.
type RecommendationsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max number of recommendations to return (0 = all)"`
}

// GetRecommendationsTool returns the MCP tool handler for get_recommendations.
func (h *Handler) GetRecommendationsTool() func(context.Context, *mcp.CallToolRequest, RecommendationsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RecommendationsInput) (*mcp.CallToolResult, any, error) {
		if in.Limit < 0 {
			return errorResult("Invalid limit: must be >= 0"), nil, nil
		}
		return jsonResult(h.service.Recommendations(ctx, in.Limit)), nil, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}
