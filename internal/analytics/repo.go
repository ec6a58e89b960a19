package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Exercise(ctx context.Context, id string) (_ *ExerciseRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e ExerciseRef
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, name, muscle_group FROM exercises WHERE id = $1;`,
		id,
	).Scan(&e.ID, &e.Name, &e.MuscleGroup); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return &e, nil
}

// Sessions aggregates the sets of one exercise per workout within the last days days.
// Zero days covers the whole history.
func (r *Repo) Sessions(ctx context.Context, exerciseID string, days int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.sessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID), attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`WITH s AS (
				SELECT w.id AS workout_id, w.workout_date, w.perceived_exertion,
					ws.weight, ws.reps, ws.set_type, ws.rpe,
					MAX(ws.weight) OVER (PARTITION BY w.id) AS top_weight
				FROM workout_sets ws
				JOIN workouts w ON w.id = ws.workout_id
				WHERE ws.exercise_id = $1
					AND ($2::int <= 0 OR w.workout_date >= CURRENT_DATE - $2::int)
			)
			SELECT
				workout_date,
				MAX(weight),
				MAX(reps) FILTER (WHERE weight = top_weight),
				COALESCE(SUM(weight * reps) FILTER (WHERE set_type = 'working'), 0),
				AVG(rpe),
				perceived_exertion
			FROM s
			GROUP BY workout_id, workout_date, perceived_exertion
			ORDER BY workout_date, workout_id;`,
		exerciseID, days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.WorkoutDate, &s.MaxWeight, &s.RepsAtMaxWeight, &s.TotalVolume, &s.AvgRPE, &s.PerceivedExertion,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// WorkoutLoads aggregates every workout of the last days days, oldest first.
func (r *Repo) WorkoutLoads(ctx context.Context, days int) (_ []WorkoutLoad, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.workoutLoads")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				w.workout_date,
				w.perceived_exertion,
				COUNT(ws.id) FILTER (WHERE ws.set_type = 'working'),
				COALESCE(SUM(ws.weight * ws.reps) FILTER (WHERE ws.set_type = 'working'), 0),
				AVG(ws.rpe)
			FROM workouts w
			LEFT JOIN workout_sets ws ON ws.workout_id = w.id
			WHERE w.workout_date >= CURRENT_DATE - $1::int
			GROUP BY w.id
			ORDER BY w.workout_date, w.created_at;`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var loads []WorkoutLoad
	for rows.Next() {
		var l WorkoutLoad
		if err := rows.Scan(&l.WorkoutDate, &l.PerceivedExertion, &l.WorkingSets, &l.TotalVolume, &l.AvgRPE); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		loads = append(loads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loads, nil
}

// GroupWork counts the workouts of the last days days and sums their working sets
// per muscle group.
func (r *Repo) GroupWork(ctx context.Context, days int) (_ int, _ []GroupWork, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.groupWork")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	var workouts int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts WHERE workout_date >= CURRENT_DATE - $1::int;`,
		days,
	).Scan(&workouts); err != nil {
		return 0, nil, fmt.Errorf("count workouts: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT e.muscle_group, COUNT(*), COALESCE(SUM(COALESCE(ws.weight, 0) * ws.reps), 0)
			FROM workout_sets ws
			JOIN workouts w ON w.id = ws.workout_id
			JOIN exercises e ON e.id = ws.exercise_id
			WHERE w.workout_date >= CURRENT_DATE - $1::int
				AND ws.set_type = 'working'
			GROUP BY e.muscle_group
			ORDER BY e.muscle_group;`,
		days,
	)
	if err != nil {
		return 0, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var work []GroupWork
	for rows.Next() {
		var g GroupWork
		if err := rows.Scan(&g.MuscleGroup, &g.Sets, &g.Volume); err != nil {
			return 0, nil, fmt.Errorf("rows scan: %w", err)
		}
		work = append(work, g)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, err
	}
	return workouts, work, nil
}

// History lists every workout date with its exertion, oldest first.
func (r *Repo) History(ctx context.Context) (_ []WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT workout_date, perceived_exertion FROM workouts ORDER BY workout_date, created_at;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var history []WorkoutDay
	for rows.Next() {
		var d WorkoutDay
		if err := rows.Scan(&d.WorkoutDate, &d.PerceivedExertion); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		history = append(history, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// ExerciseDays aggregates the sets of every exercise per workout within the last days
// days, oldest first.
func (r *Repo) ExerciseDays(ctx context.Context, days int) (_ []ExerciseDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.exerciseDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				w.workout_date,
				w.perceived_exertion,
				e.muscle_group,
				MAX(ws.weight),
				COALESCE(SUM(ws.weight * ws.reps) FILTER (WHERE ws.set_type = 'working'), 0),
				AVG(ws.rpe)
			FROM workouts w
			JOIN workout_sets ws ON ws.workout_id = w.id
			JOIN exercises e ON e.id = ws.exercise_id
			WHERE w.workout_date >= CURRENT_DATE - $1::int
			GROUP BY w.id, e.id
			ORDER BY w.workout_date, w.created_at, e.name;`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var result []ExerciseDay
	for rows.Next() {
		var d ExerciseDay
		if err := rows.Scan(
			&d.WorkoutDate, &d.PerceivedExertion, &d.MuscleGroup, &d.MaxWeight, &d.TotalVolume, &d.AvgRPE,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LastTrained returns the latest workout date of every muscle group trained within
// the last days days.
func (r *Repo) LastTrained(ctx context.Context, days int) (_ map[string]pkg.Date, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.lastTrained")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`SELECT e.muscle_group, MAX(w.workout_date)
			FROM workout_sets ws
			JOIN workouts w ON w.id = ws.workout_id
			JOIN exercises e ON e.id = ws.exercise_id
			WHERE w.workout_date >= CURRENT_DATE - $1::int
			GROUP BY e.muscle_group;`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	lastTrained := map[string]pkg.Date{}
	for rows.Next() {
		var (
			group string
			date  pkg.Date
		)
		if err := rows.Scan(&group, &date); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		lastTrained[group] = date
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lastTrained, nil
}

// LastWorkoutGroups lists the muscle groups hit by the most recent workout.
func (r *Repo) LastWorkoutGroups(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.lastWorkoutGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT e.muscle_group
			FROM workout_sets ws
			JOIN exercises e ON e.id = ws.exercise_id
			WHERE ws.workout_id = (
				SELECT id FROM workouts ORDER BY workout_date DESC, created_at DESC LIMIT 1
			)
			ORDER BY e.muscle_group;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// Catalog lists the exercises of one muscle group, or of all of them when muscleGroup
// is empty, compound movements first.
func (r *Repo) Catalog(ctx context.Context, muscleGroup string) (_ []CatalogExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.catalog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, movement_type, equipment, is_compound, description
			FROM exercises
			WHERE $1 = '' OR muscle_group = $1
			ORDER BY is_compound DESC, name;`,
		muscleGroup,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var catalog []CatalogExercise
	for rows.Next() {
		var e CatalogExercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.MuscleGroup, &e.MovementType, &e.Equipment, &e.IsCompound, &e.Description,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		catalog = append(catalog, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}
