package exercises

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
	"github.com/2beens/workouttracker/pkg"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise with that name already exists")
)

const selectExercises = `SELECT id, name, muscle_group, movement_type, equipment, is_compound, description, created_at FROM exercises`

// ListFilters are the optional filters of the exercise list.
var ListFilters = query.Filters{
	{Param: "muscle_group", Column: "muscle_group", Kind: query.Text},
	{Param: "equipment", Column: "equipment", Kind: query.Text},
	{Param: "movement_type", Column: "movement_type", Kind: query.Text},
	{Param: "compound", Column: "is_compound", Kind: query.Bool},
}

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, filters url.Values) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	b := query.New(selectExercises)
	if err := ListFilters.Apply(b, filters); err != nil {
		return nil, err
	}
	sql, args := b.OrderBy("muscle_group", "name").Build()
	span.SetAttributes(attribute.Int("filters", b.Len()))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2exercises(rows)
}

// Groups returns the distinct muscle groups, ascending.
func (r *Repo) Groups(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT muscle_group FROM exercises ORDER BY muscle_group;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	groups, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect groups: %w", err)
	}
	return groups, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(ctx, selectExercises+` WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &exercises[0], nil
}

func (r *Repo) Add(ctx context.Context, in ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	isCompound := false
	if in.IsCompound != nil {
		isCompound = *in.IsCompound
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercises
				(name, muscle_group, movement_type, equipment, is_compound, description)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, name, muscle_group, movement_type, equipment, is_compound, description, created_at;`,
		in.Name, in.MuscleGroup, in.MovementType, in.Equipment, isCompound, in.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	defer rows.Close()

	added, err := rows2exercises(rows)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	if len(added) != 1 {
		return nil, errors.New("unexpected error [no rows returned]")
	}

	span.SetAttributes(attribute.String("exercise.id", added[0].ID))
	return &added[0], nil
}

// Update applies the non-nil fields of in.
func (r *Repo) Update(ctx context.Context, id string, in ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`UPDATE exercises SET
				name = COALESCE($2, name),
				muscle_group = COALESCE($3, muscle_group),
				movement_type = COALESCE($4, movement_type),
				equipment = COALESCE($5, equipment),
				is_compound = COALESCE($6, is_compound),
				description = COALESCE($7, description)
			WHERE id = $1
			RETURNING id, name, muscle_group, movement_type, equipment, is_compound, description, created_at;`,
		id, in.Name, in.MuscleGroup, in.MovementType, in.Equipment, in.IsCompound, in.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	defer rows.Close()

	updated, err := rows2exercises(rows)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	if len(updated) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &updated[0], nil
}

// Delete removes an exercise that no logged set references. When sets still point
// at it, an *InUseError with the exact count is returned and nothing is deleted.
func (r *Repo) Delete(ctx context.Context, id string) (_ *DeletedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var deleted DeletedExercise
	err = r.db.InTx(ctx, func(tx pgx.Tx) error {
		// lock the exercise row so no set can reference it between count and delete
		var name string
		if err := tx.QueryRow(ctx, `SELECT name FROM exercises WHERE id = $1 FOR UPDATE;`, id).Scan(&name); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrExerciseNotFound
			}
			return fmt.Errorf("lock exercise: %w", err)
		}

		var setCount int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM workout_sets WHERE exercise_id = $1;`, id).Scan(&setCount); err != nil {
			return fmt.Errorf("count sets: %w", err)
		}
		span.SetAttributes(attribute.Int("set_count", setCount))
		if setCount > 0 {
			return &InUseError{SetCount: setCount}
		}

		if err := tx.QueryRow(ctx, `DELETE FROM exercises WHERE id = $1 RETURNING id, name;`, id).Scan(&deleted.ID, &deleted.Name); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return &InUseError{SetCount: 1}
			}
			return fmt.Errorf("delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.MuscleGroup, &e.MovementType, &e.Equipment,
			&e.IsCompound, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}
