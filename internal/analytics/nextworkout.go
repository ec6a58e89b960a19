package analytics

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/2beens/workouttracker/pkg"
)

const (
	RecommendFullBody = "full_body"
	RecommendTargeted = "targeted"
	RecommendRest     = "rest_or_light"

	PriorityHigh   = "high"
	PriorityMedium = "medium"

	NextWorkoutRecentDays  = 14
	NextWorkoutBalanceDays = 7

	neverTrainedDays  = 999
	maxFocusGroups    = 3
	exercisesPerGroup = 2
	defaultRecovery   = 2

	DefaultExerciseOptions = 5
	MaxExerciseOptions     = 10
)

// RecoveryDays is the rest a muscle group needs before it is trained again.
var RecoveryDays = map[string]int{
	"chest":     2,
	"back":      2,
	"shoulders": 2,
	"legs":      2,
	"arms":      1,
	"core":      1,
}

// starterLifts open a full body session after a break.
var starterLifts = []struct {
	name  string
	group string
}{
	{name: "Barbell Bench Press", group: "chest"},
	{name: "Barbell Row", group: "back"},
	{name: "Barbell Squat", group: "legs"},
	{name: "Overhead Press", group: "shoulders"},
}

var ErrNoExercisesForGroup = errors.New("no exercises for muscle group")

// CatalogExercise is an exercise as the recommenders see it.
type CatalogExercise struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MuscleGroup  string  `json:"muscle_group"`
	MovementType *string `json:"movement_type"`
	Equipment    *string `json:"equipment"`
	IsCompound   bool    `json:"is_compound"`
	Description  *string `json:"description"`
}

type ExerciseSuggestion struct {
	ExerciseID  string  `json:"exercise_id"`
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscle_group"`
	Equipment   *string `json:"equipment"`
	IsCompound  bool    `json:"is_compound"`
}

type FocusGroup struct {
	Muscle   string `json:"muscle"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

type NextWorkout struct {
	Recommendation   string               `json:"recommendation"`
	Reason           string               `json:"reason"`
	FocusMuscles     []FocusGroup         `json:"focus_muscles,omitempty"`
	SuggestedMuscles []string             `json:"suggested_muscles,omitempty"`
	Exercises        []ExerciseSuggestion `json:"exercises,omitempty"`
	Avoid            []string             `json:"avoid,omitempty"`
	Alternative      string               `json:"alternative,omitempty"`
}

// TrainingState is the recent history the next workout is planned from.
type TrainingState struct {
	RecentWorkouts    int
	WeekWorkouts      int
	WeekWork          []GroupWork
	LastTrained       map[string]pkg.Date
	LastWorkoutGroups []string
	Catalog           []CatalogExercise
}

// RecommendNextWorkout picks the muscle groups to train today: undertrained groups
// that had their rest first, then recovered groups the last workout did not hit.
func RecommendNextWorkout(state TrainingState, today pkg.Date) *NextWorkout {
	if state.RecentWorkouts == 0 {
		return &NextWorkout{
			Recommendation:   RecommendFullBody,
			Reason:           "No recent workouts found - start with a full body session",
			SuggestedMuscles: []string{"chest", "back", "legs"},
			Exercises:        starterSuggestions(state.Catalog),
		}
	}

	balance := AnalyzeBalance(NextWorkoutBalanceDays, state.WeekWorkouts, state.WeekWork)
	if state.WeekWorkouts == 0 {
		groups := []string{"chest", "back", "legs", "shoulders"}
		return &NextWorkout{
			Recommendation:   RecommendFullBody,
			Reason:           "Starting fresh after a break",
			SuggestedMuscles: groups,
			Exercises:        suggestExercises(state.Catalog, groups),
		}
	}

	restOf := func(group string) int {
		last, ok := state.LastTrained[group]
		if !ok {
			return neverTrainedDays
		}
		return last.DaysUntil(today)
	}

	var focus []FocusGroup
	for _, t := range VolumeTargets {
		gb, ok := balance.MuscleGroups.Get(t.MuscleGroup)
		if !ok || gb.Status != StatusUndertrained {
			continue
		}
		rest := restOf(t.MuscleGroup)
		if rest >= recoveryDays(t.MuscleGroup) {
			focus = append(focus, FocusGroup{
				Muscle:   t.MuscleGroup,
				Priority: PriorityHigh,
				Reason:   fmt.Sprintf("Undertrained and %d days rest", rest),
			})
		}
	}

	if len(focus) == 0 {
		for _, t := range VolumeTargets {
			rest := restOf(t.MuscleGroup)
			if rest >= recoveryDays(t.MuscleGroup) && !slices.Contains(state.LastWorkoutGroups, t.MuscleGroup) {
				focus = append(focus, FocusGroup{
					Muscle:   t.MuscleGroup,
					Priority: PriorityMedium,
					Reason:   fmt.Sprintf("Fully recovered (%d days rest)", rest),
				})
			}
		}
	}

	if len(focus) == 0 {
		return &NextWorkout{
			Recommendation: RecommendRest,
			Reason:         "Most muscle groups still recovering",
			Alternative:    "Consider light cardio, mobility work, or active recovery",
		}
	}

	focus = focus[:min(len(focus), maxFocusGroups)]
	groups := make([]string, len(focus))
	for i, f := range focus {
		groups[i] = f.Muscle
	}
	next := &NextWorkout{
		Recommendation:   RecommendTargeted,
		Reason:           "Based on training balance and recovery",
		FocusMuscles:     focus,
		SuggestedMuscles: groups,
		Exercises:        suggestExercises(state.Catalog, groups),
	}
	if len(state.LastWorkoutGroups) > 0 {
		next.Avoid = state.LastWorkoutGroups
	}
	return next
}

func recoveryDays(group string) int {
	if d, ok := RecoveryDays[group]; ok {
		return d
	}
	return defaultRecovery
}

func starterSuggestions(catalog []CatalogExercise) []ExerciseSuggestion {
	var suggestions []ExerciseSuggestion
	for _, lift := range starterLifts {
		for _, e := range catalog {
			if strings.EqualFold(e.Name, lift.name) {
				s := suggestion(e)
				s.MuscleGroup = lift.group
				suggestions = append(suggestions, s)
				break
			}
		}
	}
	return suggestions
}

// suggestExercises takes up to two exercises per group, a compound movement first
// and an isolation second, in catalog order.
func suggestExercises(catalog []CatalogExercise, groups []string) []ExerciseSuggestion {
	var suggestions []ExerciseSuggestion
	for _, g := range groups {
		var compound, isolation, rest []CatalogExercise
		for _, e := range catalog {
			if e.MuscleGroup != g {
				continue
			}
			switch {
			case e.IsCompound && len(compound) == 0:
				compound = append(compound, e)
			case !e.IsCompound && len(isolation) == 0:
				isolation = append(isolation, e)
			default:
				rest = append(rest, e)
			}
		}

		picked := append(append(compound, isolation...), rest...)
		for _, e := range picked[:min(len(picked), exercisesPerGroup)] {
			suggestions = append(suggestions, suggestion(e))
		}
	}
	return suggestions
}

func suggestion(e CatalogExercise) ExerciseSuggestion {
	return ExerciseSuggestion{
		ExerciseID:  e.ID,
		Name:        e.Name,
		MuscleGroup: e.MuscleGroup,
		Equipment:   e.Equipment,
		IsCompound:  e.IsCompound,
	}
}

type ExerciseOptions struct {
	MuscleGroup        string            `json:"muscle_group"`
	EquipmentFilter    *string           `json:"equipment_filter"`
	TotalFound         int               `json:"total_found"`
	Recommendation     string            `json:"recommendation"`
	CompoundExercises  []CatalogExercise `json:"compound_exercises"`
	IsolationExercises []CatalogExercise `json:"isolation_exercises"`
}

// RecommendExercises splits the catalog of one muscle group into compound and
// isolation movements, after the optional equipment filter and the limit.
func RecommendExercises(muscleGroup, equipment string, limit int, catalog []CatalogExercise) (*ExerciseOptions, error) {
	if len(catalog) == 0 {
		return nil, ErrNoExercisesForGroup
	}

	opts := &ExerciseOptions{
		MuscleGroup:        muscleGroup,
		Recommendation:     "Start with compound movements, finish with isolations",
		CompoundExercises:  []CatalogExercise{},
		IsolationExercises: []CatalogExercise{},
	}
	if equipment != "" {
		opts.EquipmentFilter = &equipment
	}

	var matched []CatalogExercise
	for _, e := range catalog {
		if equipment != "" && (e.Equipment == nil || !strings.EqualFold(*e.Equipment, equipment)) {
			continue
		}
		matched = append(matched, e)
	}
	matched = matched[:min(len(matched), limit)]

	for _, e := range matched {
		if e.IsCompound {
			opts.CompoundExercises = append(opts.CompoundExercises, e)
		} else {
			opts.IsolationExercises = append(opts.IsolationExercises, e)
		}
	}
	opts.TotalFound = len(matched)
	return opts, nil
}
