package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the gymdash analytics tools.
// Used by the main backend when mounting MCP at /mcp and by cmd/gymdash_mcp over stdio.
func NewServer(service *ContextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymdash",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_stats",
		Description: "Returns aggregate workout stats for a period: total workouts, total and average duration (minutes), exercise frequency and volume, muscle group distribution and consistency. Arg: period (week, month, quarter, year, all_time).",
	}, h.GetWorkoutStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns the chronological weight/volume series for one exercise, plus the latest change in weight and its trend. Arg: exercise (e.g. Bench Press).",
	}, h.GetExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_record",
		Description: "Returns the heaviest logged entry (personal record) for one exercise, with the date and workout it happened in. Arg: exercise (e.g. Squats).",
	}, h.GetPersonalRecordTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Returns training recommendations (progressive overload, push/pull balance, recovery, consistency), highest priority first. Optional arg: limit.",
	}, h.GetRecommendationsTool())

	return s
}
