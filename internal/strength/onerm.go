// Package strength estimates one-rep maxes from sub-maximal sets.
package strength

import (
	"fmt"
	"math"
)

type Formula string

const (
	Epley    Formula = "epley"
	Brzycki  Formula = "brzycki"
	Lombardi Formula = "lombardi"
	OConner  Formula = "oconner"
	Average  Formula = "average"
)

// Formulas are the single formulas Average is taken over, in reporting order.
var Formulas = []Formula{Epley, Brzycki, Lombardi, OConner}

func ParseFormula(s string) (Formula, error) {
	switch f := Formula(s); f {
	case Epley, Brzycki, Lombardi, OConner, Average:
		return f, nil
	case "":
		return Average, nil
	default:
		return "", fmt.Errorf("unknown formula %q", s)
	}
}

// Estimate returns the estimated 1RM of weight lifted for reps. A single rep is the
// 1RM itself; non-positive input estimates 0.
func Estimate(f Formula, weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	if reps < 1 || weight <= 0 {
		return 0
	}

	r := float64(reps)
	switch f {
	case Brzycki:
		if reps >= 37 {
			return weight * 2
		}
		return weight * 36 / (37 - r)
	case Lombardi:
		return weight * math.Pow(r, 0.10)
	case OConner:
		return weight * (1 + r/40)
	case Average:
		var sum float64
		for _, single := range Formulas {
			sum += Estimate(single, weight, reps)
		}
		return sum / float64(len(Formulas))
	default:
		return weight * (1 + r/30)
	}
}

// EpleyRounded is the whole-number Epley estimate used by progress series. It is nil
// when either input is missing or zero.
func EpleyRounded(weight *float64, reps *int) *float64 {
	if weight == nil || reps == nil || *weight <= 0 || *reps <= 0 {
		return nil
	}
	v := math.Round(*weight * (1 + float64(*reps)/30))
	return &v
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
