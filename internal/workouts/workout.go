package workouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/workouttracker/internal/records"
	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/pkg"
)

var SetTypes = []string{"warmup", "working", "dropset", "failure"}

const (
	// the heaviest set stays within records.MaxValue for every record type
	maxWeight = 99999.99
	maxReps   = 1000
	minRPE    = 6.0
	maxRPE    = 10.0
)

type Workout struct {
	ID                string     `json:"id"`
	WorkoutDate       pkg.Date   `json:"workout_date"`
	Name              *string    `json:"name"`
	Notes             *string    `json:"notes"`
	PerceivedExertion *int       `json:"perceived_exertion"`
	StartTime         *time.Time `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Summary is a workout list item with its set aggregates.
type Summary struct {
	Workout
	SetCount      int     `json:"set_count"`
	ExerciseCount int     `json:"exercise_count"`
	TotalVolume   float64 `json:"total_volume"`
}

type WorkoutInput struct {
	WorkoutDate       *pkg.Date  `json:"workout_date"`
	Name              *string    `json:"name"`
	Notes             *string    `json:"notes"`
	PerceivedExertion *int       `json:"perceived_exertion"`
	StartTime         *time.Time `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
}

func (in *WorkoutInput) Validate() error {
	if in.WorkoutDate != nil && in.WorkoutDate.IsZero() {
		in.WorkoutDate = nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
		if len(name) > 100 {
			return errors.New("name must be at most 100 characters")
		}
	}
	if in.PerceivedExertion != nil && (*in.PerceivedExertion < 1 || *in.PerceivedExertion > 10) {
		return errors.New("perceived_exertion must be between 1 and 10")
	}
	if in.StartTime != nil && in.EndTime != nil && in.EndTime.Before(*in.StartTime) {
		return errors.New("end_time must not be before start_time")
	}
	return nil
}

type Set struct {
	ID          string    `json:"id"`
	WorkoutID   string    `json:"workout_id"`
	ExerciseID  string    `json:"exercise_id"`
	SetNumber   int       `json:"set_number"`
	Weight      *float64  `json:"weight"`
	Reps        int       `json:"reps"`
	SetType     string    `json:"set_type"`
	RPE         *float64  `json:"rpe"`
	RestSeconds *int      `json:"rest_seconds"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type SetInput struct {
	ExerciseID  *string  `json:"exercise_id"`
	SetNumber   *int     `json:"set_number"`
	Weight      *float64 `json:"weight"`
	Reps        *int     `json:"reps"`
	SetType     *string  `json:"set_type"`
	RPE         *float64 `json:"rpe"`
	RestSeconds *int     `json:"rest_seconds"`
	Notes       *string  `json:"notes"`
}

// ValidateNew checks a set about to be inserted and fills in the defaults.
func (in *SetInput) ValidateNew() error {
	if in.ExerciseID == nil || strings.TrimSpace(*in.ExerciseID) == "" {
		return errors.New("exercise_id is required")
	}
	if in.Reps == nil {
		return errors.New("reps is required")
	}
	if err := in.validateFields(); err != nil {
		return err
	}
	if in.SetNumber == nil {
		one := 1
		in.SetNumber = &one
	}
	if in.SetType == nil {
		working := "working"
		in.SetType = &working
	}
	return nil
}

// ValidateUpdate checks a partial set update.
func (in *SetInput) ValidateUpdate() error {
	if in.ExerciseID != nil && strings.TrimSpace(*in.ExerciseID) == "" {
		return errors.New("exercise_id cannot be empty")
	}
	return in.validateFields()
}

func (in *SetInput) validateFields() error {
	if in.ExerciseID != nil {
		parsed, err := uuid.Parse(strings.TrimSpace(*in.ExerciseID))
		if err != nil {
			return errors.New("exercise_id must be a valid UUID")
		}
		id := parsed.String()
		in.ExerciseID = &id
	}
	if in.Reps != nil && (*in.Reps <= 0 || *in.Reps > maxReps) {
		return fmt.Errorf("reps must be between 1 and %d", maxReps)
	}
	if in.SetNumber != nil && *in.SetNumber <= 0 {
		return errors.New("set_number must be greater than 0")
	}
	if in.Weight != nil && (*in.Weight < 0 || strength.Round(*in.Weight, 2) > maxWeight) {
		return fmt.Errorf("weight must be between 0 and %.2f", maxWeight)
	}
	if in.SetType != nil {
		setType := strings.ToLower(strings.TrimSpace(*in.SetType))
		if !validSetType(setType) {
			return fmt.Errorf("set_type must be one of %s", strings.Join(SetTypes, ", "))
		}
		in.SetType = &setType
	}
	if in.RPE != nil && (*in.RPE < minRPE || *in.RPE > maxRPE) {
		return errors.New("rpe must be between 6 and 10")
	}
	if in.RestSeconds != nil && *in.RestSeconds < 0 {
		return errors.New("rest_seconds must not be negative")
	}
	return nil
}

func validSetType(t string) bool {
	for _, st := range SetTypes {
		if st == t {
			return true
		}
	}
	return false
}

// ParseSetsPayload accepts a single set object or an array of them and validates
// every element before returning any. The error names the offending element.
func ParseSetsPayload(body json.RawMessage) ([]SetInput, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, errors.New("request body is required")
	}

	var sets []SetInput
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(body, &sets); err != nil {
			return nil, fmt.Errorf("invalid sets payload: %w", err)
		}
	case '{':
		var s SetInput
		if err := json.Unmarshal(body, &s); err != nil {
			return nil, fmt.Errorf("invalid set payload: %w", err)
		}
		sets = []SetInput{s}
	default:
		return nil, errors.New("body must be a set object or an array of sets")
	}

	if len(sets) == 0 {
		return nil, errors.New("at least one set is required")
	}
	for i := range sets {
		if err := sets[i].ValidateNew(); err != nil {
			if len(sets) == 1 {
				return nil, err
			}
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
	}
	return sets, nil
}

type AddSetsResult struct {
	Sets    []Set
	Records []records.Record
}

// DetailSetRow is one set of a workout joined with its exercise.
type DetailSetRow struct {
	Set
	ExerciseName string
	MuscleGroup  string
	Equipment    *string
}

type ExerciseSets struct {
	ExerciseID  string  `json:"exercise_id"`
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscle_group"`
	Equipment   *string `json:"equipment"`
	Sets        []Set   `json:"sets"`
}

type Detail struct {
	Workout
	Exercises []ExerciseSets `json:"exercises"`
}

// AssembleDetail groups the ordered set rows of a workout per exercise: one entry per
// distinct exercise in first-seen order, each keeping its sets in row order.
func AssembleDetail(w Workout, rows []DetailSetRow) *Detail {
	detail := &Detail{
		Workout:   w,
		Exercises: []ExerciseSets{},
	}

	index := map[string]int{}
	for _, row := range rows {
		i, ok := index[row.ExerciseID]
		if !ok {
			i = len(detail.Exercises)
			index[row.ExerciseID] = i
			detail.Exercises = append(detail.Exercises, ExerciseSets{
				ExerciseID:  row.ExerciseID,
				Name:        row.ExerciseName,
				MuscleGroup: row.MuscleGroup,
				Equipment:   row.Equipment,
			})
		}
		detail.Exercises[i].Sets = append(detail.Exercises[i].Sets, row.Set)
	}
	return detail
}
