package trackermcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/exercises"
	"github.com/2beens/workouttracker/internal/stats"
	"github.com/2beens/workouttracker/internal/workouts"
)

// NewServer builds an MCP server with read-only tracker tools: schema, exercise catalog,
// workout detail, progress, weekly volume, personal records, training summary.
// Mounted by the main backend at /mcp and served over stdio by cmd/tracker_mcp.
func NewServer(pool *db.Pool) *mcp.Server {
	svc := NewContextService(
		NewPoolSchemaRepo(pool),
		exercises.NewRepo(pool),
		workouts.NewRepo(pool),
		stats.NewReporter(stats.NewRepo(pool)),
	)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "workout-tracker-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_schema",
		Description: "Returns the DB schema of the workout tracker tables (exercises, workouts, workout_sets, personal_records, user_profile, body_weight_log, goals): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise catalog. Optional filters: muscle_group (e.g. chest, legs), equipment (e.g. barbell). Use to find exercise ids.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout",
		Description: "Returns one workout with its sets grouped per exercise. Arg: workout_id (UUID).",
	}, h.GetWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress",
		Description: "Returns per-session progress for an exercise (max weight, reps at max, volume, estimated 1RM). Args: exercise_id (UUID); optional days (default 90).",
	}, h.GetProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_volume",
		Description: "Returns training volume per week and muscle group, newest week first. Optional: weeks (default 8).",
	}, h.GetWeeklyVolumeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the current personal records (weight, reps, volume, estimated 1RM) per exercise. Optional: muscle_group.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_summary",
		Description: "Returns training totals for a period (workouts, sets, reps, volume, average exertion) and the split per muscle group. Optional: days (default 30).",
	}, h.GetTrainingSummaryTool())

	return s
}
