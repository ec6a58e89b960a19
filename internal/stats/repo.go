package stats

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/query"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// RecordFilters are the optional filters of the personal records report.
var RecordFilters = query.Filters{
	{Param: "muscle_group", Column: "e.muscle_group", Kind: query.Text},
}

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ExerciseName(ctx context.Context, exerciseID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.exerciseName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var name string
	if err := r.db.QueryRow(ctx, `SELECT name FROM exercises WHERE id = $1;`, exerciseID).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrExerciseNotFound
		}
		return "", fmt.Errorf("get exercise: %w", err)
	}
	return name, nil
}

// ProgressRows aggregates one exercise per training day within the last days days.
// Max weight and reps at it consider every set of the day; volume, reps and set count
// only working sets.
func (r *Repo) ProgressRows(ctx context.Context, exerciseID string, days int) (_ []ProgressRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID), attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`WITH day_sets AS (
				SELECT w.workout_date, ws.weight, ws.reps, ws.set_type, ws.rpe
				FROM workout_sets ws
				JOIN workouts w ON w.id = ws.workout_id
				WHERE ws.exercise_id = $1
					AND w.workout_date >= CURRENT_DATE - $2::int
			),
			day_max AS (
				SELECT workout_date, MAX(weight) AS max_weight
				FROM day_sets
				GROUP BY workout_date
			)
			SELECT
				d.workout_date,
				m.max_weight,
				MAX(d.reps) FILTER (WHERE d.weight = m.max_weight),
				COALESCE(SUM(d.weight * d.reps) FILTER (WHERE d.set_type = 'working'), 0),
				COALESCE(SUM(d.reps) FILTER (WHERE d.set_type = 'working'), 0),
				COUNT(*) FILTER (WHERE d.set_type = 'working'),
				AVG(d.rpe) FILTER (WHERE d.set_type = 'working')
			FROM day_sets d
			JOIN day_max m ON m.workout_date = d.workout_date
			GROUP BY d.workout_date, m.max_weight
			ORDER BY d.workout_date;`,
		exerciseID, days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var progress []ProgressRow
	for rows.Next() {
		var p ProgressRow
		if err := rows.Scan(
			&p.WorkoutDate, &p.MaxWeight, &p.RepsAtMaxWeight,
			&p.TotalVolume, &p.TotalReps, &p.WorkingSets, &p.AvgRPE,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return progress, nil
}

// WeeklyRows buckets working sets by week start (Monday) and muscle group.
func (r *Repo) WeeklyRows(ctx context.Context, days int) (_ []WeeklyRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				date_trunc('week', w.workout_date::timestamp)::date AS week_start,
				e.muscle_group,
				COALESCE(SUM(ws.weight * ws.reps), 0),
				SUM(ws.reps),
				COUNT(*),
				COUNT(DISTINCT w.id)
			FROM workout_sets ws
			JOIN workouts w ON w.id = ws.workout_id
			JOIN exercises e ON e.id = ws.exercise_id
			WHERE ws.set_type = 'working'
				AND w.workout_date >= CURRENT_DATE - $1::int
			GROUP BY week_start, e.muscle_group
			ORDER BY week_start DESC, e.muscle_group;`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var weekly []WeeklyRow
	for rows.Next() {
		var w WeeklyRow
		if err := rows.Scan(&w.WeekStart, &w.MuscleGroup, &w.Volume, &w.Reps, &w.Sets, &w.Workouts); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		weekly = append(weekly, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return weekly, nil
}

// CurrentRecords lists the records flagged current, optionally for one muscle group.
func (r *Repo) CurrentRecords(ctx context.Context, filters url.Values) (_ []RecordRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	b := query.New(`SELECT pr.exercise_id, e.name, e.muscle_group, pr.record_type, pr.record_value, pr.record_date
		FROM personal_records pr
		JOIN exercises e ON e.id = pr.exercise_id`)
	b.Where("pr.is_current")
	if err := RecordFilters.Apply(b, filters); err != nil {
		return nil, err
	}
	sql, args := b.OrderBy("e.muscle_group", "e.name", "pr.record_type", "pr.created_at").Build()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var records []RecordRow
	for rows.Next() {
		var rec RecordRow
		if err := rows.Scan(&rec.ExerciseID, &rec.ExerciseName, &rec.MuscleGroup, &rec.RecordType, &rec.Value, &rec.Date); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// SummaryTotals aggregates the last days days. Workout counts and exertion come from
// the workouts; set, rep, volume and RPE figures from working sets only.
func (r *Repo) SummaryTotals(ctx context.Context, days int) (_ *SummaryTotals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	var t SummaryTotals
	if err := r.db.QueryRow(
		ctx,
		`WITH window_workouts AS (
				SELECT id, workout_date, perceived_exertion
				FROM workouts
				WHERE workout_date >= CURRENT_DATE - $1::int
			),
			window_sets AS (
				SELECT ws.exercise_id, ws.weight, ws.reps, ws.set_type, ws.rpe
				FROM workout_sets ws
				JOIN window_workouts w ON w.id = ws.workout_id
			)
			SELECT
				(SELECT COUNT(*) FROM window_workouts),
				(SELECT COUNT(DISTINCT workout_date) FROM window_workouts),
				(SELECT COUNT(*) FROM window_sets WHERE set_type = 'working'),
				(SELECT COALESCE(SUM(reps), 0) FROM window_sets WHERE set_type = 'working'),
				(SELECT COALESCE(SUM(weight * reps), 0) FROM window_sets WHERE set_type = 'working'),
				(SELECT COUNT(DISTINCT exercise_id) FROM window_sets),
				(SELECT AVG(perceived_exertion) FROM window_workouts),
				(SELECT AVG(rpe) FROM window_sets WHERE set_type = 'working');`,
		days,
	).Scan(
		&t.TotalWorkouts, &t.TrainingDays, &t.TotalSets, &t.TotalReps, &t.TotalVolume,
		&t.ExercisesUsed, &t.AvgPerceivedExertion, &t.AvgRPE,
	); err != nil {
		return nil, fmt.Errorf("summary totals: %w", err)
	}
	return &t, nil
}

// MuscleGroupShares is the working set count and volume per muscle group in the
// last days days.
func (r *Repo) MuscleGroupShares(ctx context.Context, days int) (_ []MuscleGroupShare, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.muscleGroupShares")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT e.muscle_group, COUNT(*), COALESCE(SUM(ws.weight * ws.reps), 0)
			FROM workout_sets ws
			JOIN workouts w ON w.id = ws.workout_id
			JOIN exercises e ON e.id = ws.exercise_id
			WHERE ws.set_type = 'working'
				AND w.workout_date >= CURRENT_DATE - $1::int
			GROUP BY e.muscle_group
			ORDER BY COUNT(*) DESC, e.muscle_group;`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var shares []MuscleGroupShare
	for rows.Next() {
		var s MuscleGroupShare
		if err := rows.Scan(&s.MuscleGroup, &s.Sets, &s.Volume); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shares, nil
}
