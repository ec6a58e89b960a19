package workouts

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/query"
	"github.com/2beens/workouttracker/internal/records"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSetNotFound     = errors.New("set not found")
	ErrInvalidExercise = errors.New("invalid exercise_id: exercise does not exist")
	ErrInvalidSet      = errors.New("set violates a data constraint")
	ErrInvalidWorkout  = errors.New("workout violates a data constraint")
)

const (
	workoutColumns = `id, workout_date, name, notes, perceived_exertion, start_time, end_time, created_at, updated_at`
	setColumns     = `id, workout_id, exercise_id, set_number, weight, reps, set_type, rpe, rest_seconds, notes, created_at`

	selectSummaries = `SELECT
			w.id, w.workout_date, w.name, w.notes, w.perceived_exertion, w.start_time, w.end_time,
			w.created_at, w.updated_at,
			COUNT(ws.id),
			COUNT(DISTINCT ws.exercise_id),
			COALESCE(SUM(ws.weight * ws.reps), 0)
		FROM workouts w
		LEFT JOIN workout_sets ws ON ws.workout_id = w.id`

	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ListFilters bound the listing by workout date, inclusively.
var ListFilters = query.Filters{
	{Param: "start_date", Column: "w.workout_date", Kind: query.DateFrom},
	{Param: "end_date", Column: "w.workout_date", Kind: query.DateTo},
}

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns workouts newest first, with their set aggregates.
func (r *Repo) List(ctx context.Context, filters url.Values) (_ []Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	limit, err := query.BoundedInt(filters, "limit", DefaultListLimit, 1, MaxListLimit)
	if err != nil {
		return nil, err
	}
	offset, err := query.NonNegativeInt(filters, "offset", 0)
	if err != nil {
		return nil, err
	}

	b := query.New(selectSummaries)
	if err := ListFilters.Apply(b, filters); err != nil {
		return nil, err
	}
	sql, args := b.
		GroupBy("w.id").
		OrderBy("w.workout_date DESC", "w.created_at DESC").
		Limit(limit).
		Offset(offset).
		Build()
	span.SetAttributes(attribute.Int("filters", b.Len()), attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(
			&s.ID, &s.WorkoutDate, &s.Name, &s.Notes, &s.PerceivedExertion, &s.StartTime, &s.EndTime,
			&s.CreatedAt, &s.UpdatedAt,
			&s.SetCount, &s.ExerciseCount, &s.TotalVolume,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	return getWorkout(ctx, r.db, id)
}

// Detail returns the workout with its sets grouped per exercise.
func (r *Repo) Detail(ctx context.Context, id string) (_ *Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	w, err := getWorkout(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
				ws.id, ws.workout_id, ws.exercise_id, ws.set_number, ws.weight, ws.reps, ws.set_type,
				ws.rpe, ws.rest_seconds, ws.notes, ws.created_at,
				e.name, e.muscle_group, e.equipment
			FROM workout_sets ws
			JOIN exercises e ON e.id = ws.exercise_id
			WHERE ws.workout_id = $1
			ORDER BY ws.created_at, ws.set_number;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	var setRows []DetailSetRow
	for rows.Next() {
		var row DetailSetRow
		if err := rows.Scan(
			&row.ID, &row.WorkoutID, &row.ExerciseID, &row.SetNumber, &row.Weight, &row.Reps, &row.SetType,
			&row.RPE, &row.RestSeconds, &row.Notes, &row.CreatedAt,
			&row.ExerciseName, &row.MuscleGroup, &row.Equipment,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		setRows = append(setRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sets", len(setRows)))
	return AssembleDetail(*w, setRows), nil
}

func (r *Repo) Add(ctx context.Context, in WorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workouts
				(workout_date, name, notes, perceived_exertion, start_time, end_time)
				VALUES (COALESCE($1, CURRENT_DATE), $2, $3, $4, $5, $6)
			RETURNING `+workoutColumns+`;`,
		in.WorkoutDate, in.Name, in.Notes, in.PerceivedExertion, in.StartTime, in.EndTime,
	)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	defer rows.Close()

	added, err := rows2workouts(rows)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidWorkout, pkg.PgConstraintName(err))
		}
		return nil, err
	}
	if len(added) != 1 {
		return nil, errors.New("unexpected error [no rows returned]")
	}

	span.SetAttributes(attribute.String("workout.id", added[0].ID))
	return &added[0], nil
}

// Update applies the non-nil fields of in.
func (r *Repo) Update(ctx context.Context, id string, in WorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`UPDATE workouts SET
				workout_date = COALESCE($2, workout_date),
				name = COALESCE($3, name),
				notes = COALESCE($4, notes),
				perceived_exertion = COALESCE($5, perceived_exertion),
				start_time = COALESCE($6, start_time),
				end_time = COALESCE($7, end_time),
				updated_at = now()
			WHERE id = $1
			RETURNING `+workoutColumns+`;`,
		id, in.WorkoutDate, in.Name, in.Notes, in.PerceivedExertion, in.StartTime, in.EndTime,
	)
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	defer rows.Close()

	updated, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(updated) != 1 {
		return nil, ErrWorkoutNotFound
	}
	return &updated[0], nil
}

// Delete removes the workout and, by cascade, its sets.
func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// AddSets inserts the validated sets of one workout in a single transaction, in the
// given order, and brings the personal records of every touched exercise up to
// date. Nothing is written when any insert fails.
func (r *Repo) AddSets(ctx context.Context, workoutID string, sets []SetInput) (_ *AddSetsResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID), attribute.Int("sets", len(sets)))

	result := &AddSetsResult{}
	err = r.db.InTx(ctx, func(tx pgx.Tx) error {
		// FOR SHARE keeps the workout from being deleted under the batch
		var workoutDate pkg.Date
		if err := tx.QueryRow(
			ctx, `SELECT workout_date FROM workouts WHERE id = $1 FOR SHARE;`, workoutID,
		).Scan(&workoutDate); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrWorkoutNotFound
			}
			return fmt.Errorf("get workout: %w", err)
		}

		for i, in := range sets {
			var s Set
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO workout_sets
						(workout_id, exercise_id, set_number, weight, reps, set_type, rpe, rest_seconds, notes)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
					RETURNING `+setColumns+`;`,
				workoutID, in.ExerciseID, in.SetNumber, in.Weight, in.Reps, in.SetType, in.RPE, in.RestSeconds, in.Notes,
			).Scan(
				&s.ID, &s.WorkoutID, &s.ExerciseID, &s.SetNumber, &s.Weight, &s.Reps, &s.SetType,
				&s.RPE, &s.RestSeconds, &s.Notes, &s.CreatedAt,
			); err != nil {
				return fmt.Errorf("insert set %d: %w", i+1, classifySetError(err))
			}
			result.Sets = append(result.Sets, s)

			newRecords, err := records.Apply(ctx, tx, loggedSet(s, workoutDate))
			if err != nil {
				return fmt.Errorf("set %d records: %w", i+1, err)
			}
			result.Records = append(result.Records, newRecords...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records.new", len(result.Records)))
	return result, nil
}

// UpdateSet applies the non-nil fields of in to a set of the workout. An improved
// set can raise records; an edit never lowers an existing record.
func (r *Repo) UpdateSet(ctx context.Context, workoutID, setID string, in SetInput) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID), attribute.String("set.id", setID))

	var s Set
	err = r.db.InTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`UPDATE workout_sets SET
					exercise_id = COALESCE($3, exercise_id),
					set_number = COALESCE($4, set_number),
					weight = COALESCE($5, weight),
					reps = COALESCE($6, reps),
					set_type = COALESCE($7, set_type),
					rpe = COALESCE($8, rpe),
					rest_seconds = COALESCE($9, rest_seconds),
					notes = COALESCE($10, notes)
				WHERE id = $1 AND workout_id = $2
				RETURNING `+setColumns+`;`,
			setID, workoutID, in.ExerciseID, in.SetNumber, in.Weight, in.Reps, in.SetType, in.RPE, in.RestSeconds, in.Notes,
		).Scan(
			&s.ID, &s.WorkoutID, &s.ExerciseID, &s.SetNumber, &s.Weight, &s.Reps, &s.SetType,
			&s.RPE, &s.RestSeconds, &s.Notes, &s.CreatedAt,
		); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrSetNotFound
			}
			return classifySetError(err)
		}

		var workoutDate pkg.Date
		if err := tx.QueryRow(ctx, `SELECT workout_date FROM workouts WHERE id = $1;`, workoutID).Scan(&workoutDate); err != nil {
			return fmt.Errorf("get workout date: %w", err)
		}
		if _, err := records.Apply(ctx, tx, loggedSet(s, workoutDate)); err != nil {
			return fmt.Errorf("records: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) DeleteSet(ctx context.Context, workoutID, setID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID), attribute.String("set.id", setID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_sets WHERE id = $1 AND workout_id = $2;`, setID, workoutID)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func getWorkout(ctx context.Context, q db.Querier, id string) (*Workout, error) {
	rows, err := q.Query(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}
	return &workouts[0], nil
}

func classifySetError(err error) error {
	switch {
	case pkg.IsForeignKeyViolationError(err):
		if pkg.PgConstraintName(err) == "workout_sets_workout_id_fkey" {
			return ErrWorkoutNotFound
		}
		return ErrInvalidExercise
	case pkg.IsCheckViolationError(err):
		return fmt.Errorf("%w: %s", ErrInvalidSet, pkg.PgConstraintName(err))
	default:
		return err
	}
}

func loggedSet(s Set, date pkg.Date) records.LoggedSet {
	return records.LoggedSet{
		SetID:      s.ID,
		ExerciseID: s.ExerciseID,
		Date:       date,
		Weight:     s.Weight,
		Reps:       s.Reps,
		SetType:    s.SetType,
	}
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.WorkoutDate, &w.Name, &w.Notes, &w.PerceivedExertion,
			&w.StartTime, &w.EndTime, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}
