package goals

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
	ErrGoalNotFound    = errors.New("goal not found")
	ErrInvalidExercise = errors.New("invalid exercise_id: exercise does not exist")
)

const selectGoals = `SELECT g.id, g.exercise_id, e.name, g.goal_type, g.target_value, g.target_date,
		g.status, g.notes, g.created_at, g.achieved_at
	FROM goals g
	LEFT JOIN exercises e ON e.id = g.exercise_id`

var ListFilters = query.Filters{
	{Param: "status", Column: "g.status", Kind: query.Text},
	{Param: "goal_type", Column: "g.goal_type", Kind: query.Text},
}

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, filters url.Values) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	b := query.New(selectGoals)
	if err := ListFilters.Apply(b, filters); err != nil {
		return nil, err
	}
	sql, args := b.OrderBy("g.status", "g.target_date NULLS LAST", "g.created_at DESC").Build()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	return rows2goals(rows)
}

func (r *Repo) Add(ctx context.Context, in GoalInput) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id string
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO goals (exercise_id, goal_type, target_value, target_date, status, notes, achieved_at)
			VALUES ($1, $2, $3, $4, COALESCE($5::varchar, 'active'), $6,
				CASE WHEN $5::varchar = 'achieved' THEN now() END)
			RETURNING id;`,
		in.ExerciseID, in.GoalType, in.TargetValue, in.TargetDate, in.Status, in.Notes,
	).Scan(&id); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrInvalidExercise
		}
		return nil, fmt.Errorf("insert: %w", err)
	}

	span.SetAttributes(attribute.String("goal.id", id))
	return r.get(ctx, id)
}

// Update applies the non-nil fields of in. Moving a goal to achieved stamps
// achieved_at; moving it away clears it.
func (r *Repo) Update(ctx context.Context, id string, in GoalInput) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goals SET
				exercise_id = COALESCE($2, exercise_id),
				goal_type = COALESCE($3, goal_type),
				target_value = COALESCE($4, target_value),
				target_date = COALESCE($5, target_date),
				notes = COALESCE($7, notes),
				achieved_at = CASE
					WHEN $6::varchar IS NULL THEN achieved_at
					WHEN $6::varchar = 'achieved' THEN COALESCE(achieved_at, now())
					ELSE NULL
				END,
				status = COALESCE($6::varchar, status)
			WHERE id = $1;`,
		id, in.ExerciseID, in.GoalType, in.TargetValue, in.TargetDate, in.Status, in.Notes,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrInvalidExercise
		}
		return nil, fmt.Errorf("update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrGoalNotFound
	}
	return r.get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) get(ctx context.Context, id string) (*Goal, error) {
	rows, err := r.db.Query(ctx, selectGoals+` WHERE g.id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	goals, err := rows2goals(rows)
	if err != nil {
		return nil, err
	}
	if len(goals) != 1 {
		return nil, ErrGoalNotFound
	}
	return &goals[0], nil
}

func rows2goals(rows pgx.Rows) ([]Goal, error) {
	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.ExerciseID, &g.ExerciseName, &g.GoalType, &g.TargetValue, &g.TargetDate,
			&g.Status, &g.Notes, &g.CreatedAt, &g.AchievedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}
