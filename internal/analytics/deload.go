package analytics

import (
	"fmt"

	"github.com/2beens/workouttracker/pkg"
)

const (
	MinDeloadWorkouts = 8

	deloadWindow        = 12
	deloadMinSpanDays   = 21
	deloadAfterWorkouts = 16
	breakDays           = 7
	minExertionPoints   = 4
)

type WorkoutDay struct {
	WorkoutDate       pkg.Date
	PerceivedExertion *int
}

type DeloadAdvice struct {
	NeedsDeload         bool   `json:"needs_deload"`
	Reason              string `json:"reason,omitempty"`
	Suggestion          string `json:"suggestion,omitempty"`
	WorkoutsLogged      *int   `json:"workouts_logged,omitempty"`
	MinimumNeeded       *int   `json:"minimum_needed,omitempty"`
	WorkoutsUntilDeload *int   `json:"workouts_until_deload,omitempty"`
}

// AdviseDeload decides whether a deload week is due from the whole workout history,
// ordered by date.
func AdviseDeload(history []WorkoutDay) *DeloadAdvice {
	if len(history) < MinDeloadWorkouts {
		logged, needed := len(history), MinDeloadWorkouts
		return &DeloadAdvice{
			Reason:         "Not enough training history to evaluate",
			WorkoutsLogged: &logged,
			MinimumNeeded:  &needed,
		}
	}

	recent := history[max(0, len(history)-deloadWindow):]
	if recent[0].WorkoutDate.DaysUntil(recent[len(recent)-1].WorkoutDate) < deloadMinSpanDays {
		return &DeloadAdvice{
			Reason: "Training period too short for deload",
		}
	}

	var exertion []float64
	for _, d := range recent {
		if d.PerceivedExertion != nil {
			exertion = append(exertion, float64(*d.PerceivedExertion))
		}
	}
	if len(exertion) >= minExertionPoints {
		half := len(exertion) / 2
		if mean(exertion[len(exertion)-half:]) > mean(exertion[:half])+1 {
			return &DeloadAdvice{
				NeedsDeload: true,
				Reason:      "Perceived exertion increasing - signs of accumulated fatigue",
				Suggestion:  "Reduce weights by 40-50% and volume by 50% for 1 week",
			}
		}
	}

	since := workoutsSinceBreak(history)
	if since >= deloadAfterWorkouts {
		return &DeloadAdvice{
			NeedsDeload: true,
			Reason:      fmt.Sprintf("%d workouts since last break", since),
			Suggestion:  "Schedule a deload week: reduce intensity by 40%, volume by 50%",
		}
	}

	until := deloadAfterWorkouts - since
	return &DeloadAdvice{
		WorkoutsUntilDeload: &until,
		Suggestion:          "Continue training as normal",
	}
}

// workoutsSinceBreak counts the workouts from the one ending the last break of
// breakDays or more, inclusive.
func workoutsSinceBreak(history []WorkoutDay) int {
	for i := len(history) - 1; i > 0; i-- {
		if history[i-1].WorkoutDate.DaysUntil(history[i].WorkoutDate) >= breakDays {
			return len(history) - i
		}
	}
	return len(history)
}
