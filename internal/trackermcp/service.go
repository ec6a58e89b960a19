package trackermcp

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/2beens/workouttracker/internal/exercises"
	"github.com/2beens/workouttracker/internal/stats"
	"github.com/2beens/workouttracker/internal/workouts"
)

// ExercisesRepo lists catalog exercises.
type ExercisesRepo interface {
	List(ctx context.Context, filters url.Values) ([]exercises.Exercise, error)
}

// WorkoutsRepo loads a workout with its sets.
type WorkoutsRepo interface {
	Detail(ctx context.Context, id string) (*workouts.Detail, error)
}

type statsReporter interface {
	Progress(ctx context.Context, exerciseID string, days int) (*stats.ProgressReport, error)
	WeeklyVolume(ctx context.Context, weeks int) (*stats.WeeklyVolumeReport, error)
	PersonalRecords(ctx context.Context, filters url.Values) (*stats.RecordsReport, error)
	Summary(ctx context.Context, days int) (*stats.TrainingSummary, error)
}

// contextService provides tracker context data to the tool handlers.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListExercises(ctx context.Context, muscleGroup, equipment string) ([]exercises.Exercise, error)
	GetWorkout(ctx context.Context, id string) (*workouts.Detail, error)
	GetProgress(ctx context.Context, exerciseID string, days int) (*stats.ProgressReport, error)
	GetWeeklyVolume(ctx context.Context, weeks int) (*stats.WeeklyVolumeReport, error)
	GetPersonalRecords(ctx context.Context, muscleGroup string) (*stats.RecordsReport, error)
	GetTrainingSummary(ctx context.Context, days int) (*stats.TrainingSummary, error)
}

// ContextService holds dependencies and implements the tracker context lookups.
type ContextService struct {
	schema    SchemaRepo
	exercises ExercisesRepo
	workouts  WorkoutsRepo
	reporter  statsReporter
}

func NewContextService(schemaRepo SchemaRepo, exercisesRepo ExercisesRepo, workoutsRepo WorkoutsRepo, reporter statsReporter) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		exercises: exercisesRepo,
		workouts:  workoutsRepo,
		reporter:  reporter,
	}
}

// GetSchema returns the DB schema of the tracker tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetTrackerColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatTrackerSchema(cols), nil
}

func formatTrackerSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Workout Tracker DB Schema\n\nNo tracker tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Workout Tracker DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(trackerTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// ListExercises returns catalog exercises, optionally filtered by muscle group and equipment.
func (s *ContextService) ListExercises(ctx context.Context, muscleGroup, equipment string) ([]exercises.Exercise, error) {
	filters := url.Values{}
	if muscleGroup != "" {
		filters.Set("muscle_group", muscleGroup)
	}
	if equipment != "" {
		filters.Set("equipment", equipment)
	}
	return s.exercises.List(ctx, filters)
}

func (s *ContextService) GetWorkout(ctx context.Context, id string) (*workouts.Detail, error) {
	return s.workouts.Detail(ctx, id)
}

func (s *ContextService) GetProgress(ctx context.Context, exerciseID string, days int) (*stats.ProgressReport, error) {
	return s.reporter.Progress(ctx, exerciseID, days)
}

func (s *ContextService) GetWeeklyVolume(ctx context.Context, weeks int) (*stats.WeeklyVolumeReport, error) {
	return s.reporter.WeeklyVolume(ctx, weeks)
}

// GetPersonalRecords returns the current records, optionally for one muscle group.
func (s *ContextService) GetPersonalRecords(ctx context.Context, muscleGroup string) (*stats.RecordsReport, error) {
	filters := url.Values{}
	if muscleGroup != "" {
		filters.Set("muscle_group", muscleGroup)
	}
	return s.reporter.PersonalRecords(ctx, filters)
}

func (s *ContextService) GetTrainingSummary(ctx context.Context, days int) (*stats.TrainingSummary, error) {
	return s.reporter.Summary(ctx, days)
}
