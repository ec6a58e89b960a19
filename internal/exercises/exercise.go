package exercises

import (
	"fmt"
	"strings"
	"time"
)

type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MuscleGroup  string    `json:"muscle_group"`
	MovementType *string   `json:"movement_type"`
	Equipment    *string   `json:"equipment"`
	IsCompound   bool      `json:"is_compound"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExerciseInput is the create/update payload. On update, nil fields are kept.
type ExerciseInput struct {
	Name         *string `json:"name"`
	MuscleGroup  *string `json:"muscle_group"`
	MovementType *string `json:"movement_type"`
	Equipment    *string `json:"equipment"`
	IsCompound   *bool   `json:"is_compound"`
	Description  *string `json:"description"`
}

// Normalize trims names and lower-cases the categorical fields.
func (in *ExerciseInput) Normalize() {
	trim := func(s *string, lower bool) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		if lower {
			v = strings.ToLower(v)
		}
		return &v
	}
	in.Name = trim(in.Name, false)
	in.MuscleGroup = trim(in.MuscleGroup, true)
	in.MovementType = trim(in.MovementType, true)
	in.Equipment = trim(in.Equipment, true)
}

func (in *ExerciseInput) ValidateCreate() error {
	if in.Name == nil || *in.Name == "" {
		return fmt.Errorf("name is required")
	}
	if in.MuscleGroup == nil || *in.MuscleGroup == "" {
		return fmt.Errorf("muscle_group is required")
	}
	return in.validateLengths()
}

func (in *ExerciseInput) ValidateUpdate() error {
	if in.Name != nil && *in.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if in.MuscleGroup != nil && *in.MuscleGroup == "" {
		return fmt.Errorf("muscle_group cannot be empty")
	}
	return in.validateLengths()
}

func (in *ExerciseInput) validateLengths() error {
	if in.Name != nil && len(*in.Name) > 100 {
		return fmt.Errorf("name is too long (max 100)")
	}
	for field, v := range map[string]*string{
		"muscle_group":  in.MuscleGroup,
		"movement_type": in.MovementType,
		"equipment":     in.Equipment,
	} {
		if v != nil && len(*v) > 50 {
			return fmt.Errorf("%s is too long (max 50)", field)
		}
	}
	return nil
}

// InUseError is returned when deleting an exercise that logged sets still reference.
type InUseError struct {
	SetCount int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("exercise is referenced by %d logged sets", e.SetCount)
}

type DeletedExercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
