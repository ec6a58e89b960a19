package analytics

import (
	"github.com/2beens/workouttracker/internal/stats"
	"github.com/2beens/workouttracker/internal/strength"
)

const (
	MinCalcReps = 1
	MaxCalcReps = 30
)

type OneRMEstimate struct {
	Weight       float64                    `json:"weight"`
	Reps         int                        `json:"reps"`
	Formula      strength.Formula           `json:"formula,omitempty"`
	Estimated1RM float64                    `json:"estimated_1rm"`
	AllFormulas  *stats.OrderedMap[float64] `json:"all_formulas,omitempty"`
	Note         string                     `json:"note,omitempty"`
}

// CalculateOneRM estimates the 1RM of weight x reps with every formula, each rounded
// to one decimal. The average is taken over the rounded values.
func CalculateOneRM(weight float64, reps int, formula strength.Formula) *OneRMEstimate {
	if reps == 1 {
		return &OneRMEstimate{
			Weight:       weight,
			Reps:         reps,
			Estimated1RM: weight,
			Note:         "1 rep = actual 1RM",
		}
	}

	all := stats.NewOrderedMap[float64]()
	var sum float64
	for _, f := range strength.Formulas {
		v := strength.Round(strength.Estimate(f, weight, reps), 1)
		all.Set(string(f), v)
		sum += v
	}

	var result float64
	if formula == strength.Average {
		result = strength.Round(sum/float64(len(strength.Formulas)), 1)
	} else {
		result, _ = all.Get(string(formula))
	}

	return &OneRMEstimate{
		Weight:       weight,
		Reps:         reps,
		Formula:      formula,
		Estimated1RM: result,
		AllFormulas:  all,
	}
}
