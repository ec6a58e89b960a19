// Package records keeps personal records current as sets are logged.
package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

const (
	TypeWeight       = "weight"
	TypeReps         = "reps"
	TypeEstimated1RM = "estimated_1rm"
	TypeVolume       = "volume"
)

var Types = []string{TypeWeight, TypeReps, TypeEstimated1RM, TypeVolume}

// MaxValue is the largest record value personal_records can store.
const MaxValue = 99999999.99

type Record struct {
	ID            string    `json:"id"`
	ExerciseID    string    `json:"exercise_id"`
	WorkoutSetID  *string   `json:"workout_set_id"`
	RecordType    string    `json:"record_type"`
	Value         float64   `json:"value"`
	PreviousValue *float64  `json:"previous_value,omitempty"`
	Date          pkg.Date  `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// LoggedSet is what the tracker needs to know about a freshly inserted set.
type LoggedSet struct {
	SetID      string
	ExerciseID string
	Date       pkg.Date
	Weight     *float64
	Reps       int
	SetType    string
}

type Candidate struct {
	RecordType string
	Value      float64
}

// Qualifies reports whether sets of this type can set records. Warmups and drop sets
// never do.
func Qualifies(setType string) bool {
	return setType == "working" || setType == "failure"
}

// Candidates lists the record values a set proposes. Weight based records need a
// positive weight.
func Candidates(s LoggedSet) []Candidate {
	if !Qualifies(s.SetType) || s.Reps <= 0 {
		return nil
	}

	candidates := []Candidate{{RecordType: TypeReps, Value: float64(s.Reps)}}
	if s.Weight == nil || *s.Weight <= 0 {
		return candidates
	}

	w := *s.Weight
	return append(candidates,
		Candidate{RecordType: TypeWeight, Value: strength.Round(w, 2)},
		Candidate{RecordType: TypeEstimated1RM, Value: strength.Round(strength.Estimate(strength.Epley, w, s.Reps), 2)},
		Candidate{RecordType: TypeVolume, Value: strength.Round(w*float64(s.Reps), 2)},
	)
}

// Apply records every candidate of s that beats the current record of its type.
// It must run inside the transaction that inserted the set: the current rows are
// locked, the beaten ones flagged not current and the new ones inserted as current,
// keeping at most one current record per exercise and type.
func Apply(ctx context.Context, tx db.Querier, s LoggedSet) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", s.ExerciseID))

	candidates := Candidates(s)
	if len(candidates) == 0 {
		return nil, nil
	}

	// serialize record maintenance per exercise, also when no current row exists yet
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, s.ExerciseID); err != nil {
		return nil, fmt.Errorf("lock exercise records: %w", err)
	}

	var newRecords []Record
	for _, c := range candidates {
		var (
			currentID    string
			currentValue float64
			hasCurrent   = true
		)
		err := tx.QueryRow(
			ctx,
			`SELECT id, record_value FROM personal_records
				WHERE exercise_id = $1 AND record_type = $2 AND is_current
				FOR UPDATE;`,
			s.ExerciseID, c.RecordType,
		).Scan(&currentID, &currentValue)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("get current %s record: %w", c.RecordType, err)
			}
			hasCurrent = false
		}

		if hasCurrent && c.Value <= currentValue {
			continue
		}

		rec := Record{
			ExerciseID:   s.ExerciseID,
			WorkoutSetID: &s.SetID,
			RecordType:   c.RecordType,
			Value:        c.Value,
			Date:         s.Date,
		}
		if hasCurrent {
			if _, err := tx.Exec(ctx, `UPDATE personal_records SET is_current = false WHERE id = $1;`, currentID); err != nil {
				return nil, fmt.Errorf("retire %s record: %w", c.RecordType, err)
			}
			prev := currentValue
			rec.PreviousValue = &prev
		}

		if err := tx.QueryRow(
			ctx,
			`INSERT INTO personal_records
					(exercise_id, workout_set_id, record_type, record_value, record_date, is_current)
					VALUES ($1, $2, $3, $4, $5, true)
				RETURNING id, created_at;`,
			s.ExerciseID, s.SetID, c.RecordType, c.Value, s.Date,
		).Scan(&rec.ID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("insert %s record: %w", c.RecordType, err)
		}
		newRecords = append(newRecords, rec)
	}

	span.SetAttributes(attribute.Int("records.new", len(newRecords)))
	return newRecords, nil
}
