package trackermcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/workouttracker/internal/stats"
	"github.com/2beens/workouttracker/internal/workouts"
	"github.com/2beens/workouttracker/pkg"
)

// Handler handles MCP tool requests: parses input, calls the service, formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
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

// boundedOrDefault maps an omitted (zero) value to def and rejects values outside [min, max].
func boundedOrDefault(name string, v, def, min, max int) (int, error) {
	if v == 0 {
		return def, nil
	}
	if v < min || v > max {
		return 0, fmt.Errorf("invalid %s: must be between %d and %d", name, min, max)
	}
	return v, nil
}

// GetSchemaTool returns the MCP tool handler for get_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ListExercisesInput is the input for list_exercises.
type ListExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. chest, legs)"`
	Equipment   string `json:"equipment,omitempty" jsonschema:"Filter by equipment (e.g. barbell, dumbbell)"`
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, ListExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListExercisesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExercises(ctx, in.MuscleGroup, in.Equipment)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// WorkoutInput is the input for get_workout.
type WorkoutInput struct {
	WorkoutID string `json:"workout_id" jsonschema:"Workout id (UUID)"`
}

// GetWorkoutTool returns the MCP tool handler for get_workout.
func (h *Handler) GetWorkoutTool() func(context.Context, *mcp.CallToolRequest, WorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutInput) (*mcp.CallToolResult, any, error) {
		if !pkg.ValidUUID(in.WorkoutID) {
			return errorResult("Invalid workout_id: must be a UUID"), nil, nil
		}
		detail, err := h.service.GetWorkout(ctx, in.WorkoutID)
		if err != nil {
			if errors.Is(err, workouts.ErrWorkoutNotFound) {
				return errorResult("Workout not found"), nil, nil
			}
			return errorResult("Error fetching workout: " + err.Error()), nil, nil
		}
		return jsonResult(detail), nil, nil
	}
}

// ProgressInput is the input for get_progress.
type ProgressInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise id (UUID)"`
	Days       int    `json:"days,omitempty" jsonschema:"Lookback window in days (default 90)"`
}

// GetProgressTool returns the MCP tool handler for get_progress.
func (h *Handler) GetProgressTool() func(context.Context, *mcp.CallToolRequest, ProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressInput) (*mcp.CallToolResult, any, error) {
		if !pkg.ValidUUID(in.ExerciseID) {
			return errorResult("Invalid exercise_id: must be a UUID"), nil, nil
		}
		days, err := boundedOrDefault("days", in.Days, stats.DefaultProgressDays, 1, stats.MaxLookbackDays)
		if err != nil {
			return errorResult("Invalid input: " + err.Error()), nil, nil
		}
		report, err := h.service.GetProgress(ctx, in.ExerciseID, days)
		if err != nil {
			if errors.Is(err, stats.ErrExerciseNotFound) {
				return errorResult("Exercise not found"), nil, nil
			}
			return errorResult("Error fetching progress: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// WeeklyVolumeInput is the input for get_weekly_volume.
type WeeklyVolumeInput struct {
	Weeks int `json:"weeks,omitempty" jsonschema:"Number of weeks to cover (default 8)"`
}

// GetWeeklyVolumeTool returns the MCP tool handler for get_weekly_volume.
func (h *Handler) GetWeeklyVolumeTool() func(context.Context, *mcp.CallToolRequest, WeeklyVolumeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeeklyVolumeInput) (*mcp.CallToolResult, any, error) {
		weeks, err := boundedOrDefault("weeks", in.Weeks, stats.DefaultVolumeWeeks, 1, stats.MaxVolumeWeeks)
		if err != nil {
			return errorResult("Invalid input: " + err.Error()), nil, nil
		}
		report, err := h.service.GetWeeklyVolume(ctx, weeks)
		if err != nil {
			return errorResult("Error fetching weekly volume: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// PersonalRecordsInput is the input for get_personal_records.
type PersonalRecordsInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. chest, legs)"`
}

// GetPersonalRecordsTool returns the MCP tool handler for get_personal_records.
func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
		report, err := h.service.GetPersonalRecords(ctx, in.MuscleGroup)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// SummaryInput is the input for get_training_summary.
type SummaryInput struct {
	Days int `json:"days,omitempty" jsonschema:"Lookback window in days (default 30)"`
}

// GetTrainingSummaryTool returns the MCP tool handler for get_training_summary.
func (h *Handler) GetTrainingSummaryTool() func(context.Context, *mcp.CallToolRequest, SummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SummaryInput) (*mcp.CallToolResult, any, error) {
		days, err := boundedOrDefault("days", in.Days, stats.DefaultSummaryDays, 1, stats.MaxLookbackDays)
		if err != nil {
			return errorResult("Invalid input: " + err.Error()), nil, nil
		}
		summary, err := h.service.GetTrainingSummary(ctx, days)
		if err != nil {
			return errorResult("Error fetching training summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}
