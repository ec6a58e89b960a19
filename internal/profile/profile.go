package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/workouttracker/pkg"
)

var (
	WeightUnits      = []string{"lbs", "kg"}
	ExperienceLevels = []string{"beginner", "intermediate", "advanced"}
)

const (
	DefaultBodyWeightDays = 90
	maxBodyWeight         = 1500
	maxHeightCM           = 300
)

// Profile is the single user profile row.
type Profile struct {
	DisplayName         *string   `json:"display_name"`
	WeightUnit          string    `json:"weight_unit"`
	HeightCM            *float64  `json:"height_cm"`
	BirthDate           pkg.Date  `json:"birth_date"`
	Sex                 *string   `json:"sex"`
	ExperienceLevel     *string   `json:"experience_level"`
	TrainingDaysPerWeek *int      `json:"training_days_per_week"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ProfileInput struct {
	DisplayName         *string   `json:"display_name"`
	WeightUnit          *string   `json:"weight_unit"`
	HeightCM            *float64  `json:"height_cm"`
	BirthDate           *pkg.Date `json:"birth_date"`
	Sex                 *string   `json:"sex"`
	ExperienceLevel     *string   `json:"experience_level"`
	TrainingDaysPerWeek *int      `json:"training_days_per_week"`
}

func (in *ProfileInput) Validate(today pkg.Date) error {
	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		if len(name) > 100 {
			return errors.New("display_name must be at most 100 characters")
		}
		in.DisplayName = &name
	}
	if in.WeightUnit != nil {
		unit := strings.ToLower(strings.TrimSpace(*in.WeightUnit))
		if !oneOf(unit, WeightUnits) {
			return errors.New("weight_unit must be lbs or kg")
		}
		in.WeightUnit = &unit
	}
	if in.HeightCM != nil {
		h := round1(*in.HeightCM)
		if h <= 0 || h > maxHeightCM {
			return fmt.Errorf("height_cm must be between 0.1 and %d", maxHeightCM)
		}
		in.HeightCM = &h
	}
	if in.BirthDate != nil {
		if in.BirthDate.IsZero() {
			in.BirthDate = nil
		} else if in.BirthDate.After(today.Time) {
			return errors.New("birth_date cannot be in the future")
		}
	}
	if in.ExperienceLevel != nil {
		level := strings.ToLower(strings.TrimSpace(*in.ExperienceLevel))
		if !oneOf(level, ExperienceLevels) {
			return errors.New("experience_level must be one of beginner, intermediate, advanced")
		}
		in.ExperienceLevel = &level
	}
	if in.TrainingDaysPerWeek != nil && (*in.TrainingDaysPerWeek < 1 || *in.TrainingDaysPerWeek > 7) {
		return errors.New("training_days_per_week must be between 1 and 7")
	}
	return nil
}

type BodyWeightEntry struct {
	ID        string    `json:"id"`
	LogDate   pkg.Date  `json:"log_date"`
	Weight    float64   `json:"weight"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type BodyWeightInput struct {
	LogDate *pkg.Date `json:"log_date"`
	Weight  *float64  `json:"weight"`
	Notes   *string   `json:"notes"`
}

func (in *BodyWeightInput) Validate(today pkg.Date) error {
	if in.Weight == nil {
		return errors.New("weight is required")
	}
	w := round1(*in.Weight)
	if w <= 0 || w > maxBodyWeight {
		return fmt.Errorf("weight must be between 0.1 and %d", maxBodyWeight)
	}
	in.Weight = &w
	if in.LogDate == nil || in.LogDate.IsZero() {
		in.LogDate = &today
	} else if in.LogDate.After(today.AddDays(1).Time) {
		// one day of slack for clients ahead of the server's time zone
		return errors.New("log_date cannot be in the future")
	}
	return nil
}

// round1 rounds to the one decimal the weight and height columns keep.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
