package goals

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/workouttracker/pkg"
)

// maxTargetValue is the largest target_value the goals table can store.
const maxTargetValue = 99999999.99

var (
	GoalTypes = []string{"strength", "bodyweight", "volume", "frequency"}
	Statuses  = []string{"active", "achieved", "abandoned"}
)

type Goal struct {
	ID           string     `json:"id"`
	ExerciseID   *string    `json:"exercise_id"`
	ExerciseName *string    `json:"exercise_name"`
	GoalType     string     `json:"goal_type"`
	TargetValue  float64    `json:"target_value"`
	TargetDate   pkg.Date   `json:"target_date"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	AchievedAt   *time.Time `json:"achieved_at"`
}

type GoalInput struct {
	ExerciseID  *string   `json:"exercise_id"`
	GoalType    *string   `json:"goal_type"`
	TargetValue *float64  `json:"target_value"`
	TargetDate  *pkg.Date `json:"target_date"`
	Status      *string   `json:"status"`
	Notes       *string   `json:"notes"`
}

func (in *GoalInput) ValidateCreate() error {
	if in.GoalType == nil {
		return errors.New("goal_type is required")
	}
	if in.TargetValue == nil {
		return errors.New("target_value is required")
	}
	if err := in.validateFields(); err != nil {
		return err
	}
	if *in.GoalType == "strength" && in.ExerciseID == nil {
		return errors.New("exercise_id is required for strength goals")
	}
	return nil
}

func (in *GoalInput) ValidateUpdate() error {
	return in.validateFields()
}

func (in *GoalInput) validateFields() error {
	if in.ExerciseID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*in.ExerciseID))
		if err != nil {
			return errors.New("exercise_id must be a valid UUID")
		}
		s := id.String()
		in.ExerciseID = &s
	}
	if in.GoalType != nil {
		t := strings.ToLower(strings.TrimSpace(*in.GoalType))
		if !oneOf(t, GoalTypes) {
			return errors.New("goal_type must be one of " + strings.Join(GoalTypes, ", "))
		}
		in.GoalType = &t
	}
	if in.TargetValue != nil {
		v := math.Round(*in.TargetValue*100) / 100
		if v <= 0 || v > maxTargetValue {
			return errors.New("target_value must be between 0.01 and 99999999.99")
		}
		in.TargetValue = &v
	}
	if in.TargetDate != nil && in.TargetDate.IsZero() {
		in.TargetDate = nil
	}
	if in.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*in.Status))
		if !oneOf(s, Statuses) {
			return errors.New("status must be one of " + strings.Join(Statuses, ", "))
		}
		in.Status = &s
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
