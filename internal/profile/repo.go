package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
)

const profileColumns = `display_name, weight_unit, height_cm, birth_date, sex, experience_level, training_days_per_week, updated_at`

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the profile row. The row always exists: migrations create it.
func (r *Repo) Get(ctx context.Context) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProfile(r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profile WHERE id = 1;`))
}

// Update applies the non-nil fields of in to the profile row.
func (r *Repo) Update(ctx context.Context, in ProfileInput) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProfile(r.db.QueryRow(
		ctx,
		`UPDATE user_profile SET
				display_name = COALESCE($1, display_name),
				weight_unit = COALESCE($2, weight_unit),
				height_cm = COALESCE($3, height_cm),
				birth_date = COALESCE($4, birth_date),
				sex = COALESCE($5, sex),
				experience_level = COALESCE($6, experience_level),
				training_days_per_week = COALESCE($7, training_days_per_week),
				updated_at = now()
			WHERE id = 1
			RETURNING `+profileColumns+`;`,
		in.DisplayName, in.WeightUnit, in.HeightCM, in.BirthDate, in.Sex, in.ExperienceLevel, in.TrainingDaysPerWeek,
	))
}

// BodyWeight lists the entries of the last days days, newest first.
func (r *Repo) BodyWeight(ctx context.Context, days int) (_ []BodyWeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.bodyWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, log_date, weight, notes, created_at
			FROM body_weight_log
			WHERE log_date >= CURRENT_DATE - $1::int
			ORDER BY log_date DESC;`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var entries []BodyWeightEntry
	for rows.Next() {
		var e BodyWeightEntry
		if err := rows.Scan(&e.ID, &e.LogDate, &e.Weight, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// LogBodyWeight writes the entry of a day, replacing what was logged for that day
// before.
func (r *Repo) LogBodyWeight(ctx context.Context, in BodyWeightInput) (_ *BodyWeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.logBodyWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e BodyWeightEntry
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO body_weight_log (log_date, weight, notes)
				VALUES (COALESCE($1, CURRENT_DATE), $2, $3)
			ON CONFLICT (log_date) DO UPDATE SET
				weight = EXCLUDED.weight,
				notes = EXCLUDED.notes
			RETURNING id, log_date, weight, notes, created_at;`,
		in.LogDate, in.Weight, in.Notes,
	).Scan(&e.ID, &e.LogDate, &e.Weight, &e.Notes, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("upsert body weight: %w", err)
	}

	span.SetAttributes(attribute.String("log_date", e.LogDate.String()))
	return &e, nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	if err := row.Scan(
		&p.DisplayName, &p.WeightUnit, &p.HeightCM, &p.BirthDate, &p.Sex,
		&p.ExperienceLevel, &p.TrainingDaysPerWeek, &p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &p, nil
}
