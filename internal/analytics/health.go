package analytics

import (
	"fmt"
	"math"

	"github.com/2beens/workouttracker/pkg"
)

const (
	MinHealthWorkouts = 5

	subScoreMax      = 25.0
	highExertion     = 8
	exertionPenalty  = 3
	gapVarianceLimit = 10.0
)

// WorkoutLoad is the aggregate of one workout across all its exercises.
type WorkoutLoad struct {
	WorkoutDate       pkg.Date
	PerceivedExertion *int
	WorkingSets       int
	TotalVolume       float64
	AvgRPE            *float64
}

type HealthBreakdown struct {
	Consistency int `json:"consistency"`
	Progress    int `json:"progress"`
	Volume      int `json:"volume"`
	Recovery    int `json:"recovery"`
}

func (b HealthBreakdown) Total() int {
	return b.Consistency + b.Progress + b.Volume + b.Recovery
}

type HealthReport struct {
	PeriodDays       int              `json:"period_days"`
	WorkoutsAnalyzed int              `json:"workouts_analyzed"`
	Score            *int             `json:"score"`
	Rating           string           `json:"rating,omitempty"`
	Breakdown        *HealthBreakdown `json:"breakdown,omitempty"`
	Recommendations  []string         `json:"recommendations,omitempty"`
	Message          string           `json:"message,omitempty"`
}

// HealthScore grades the training of the period on four 0..25 sub-scores. loads must
// be ordered by date.
func HealthScore(days int, loads []WorkoutLoad) *HealthReport {
	report := &HealthReport{
		PeriodDays:       days,
		WorkoutsAnalyzed: len(loads),
	}
	if len(loads) < MinHealthWorkouts {
		report.Message = fmt.Sprintf("Need at least %d workouts for health score. Found: %d", MinHealthWorkouts, len(loads))
		report.Recommendations = []string{"Keep training consistently to build enough data"}
		return report
	}

	b := HealthBreakdown{
		Consistency: consistencyScore(loads),
		Progress:    progressScore(loads),
		Volume:      volumeScore(loads),
		Recovery:    recoveryScore(loads),
	}
	score := b.Total()

	report.Score = &score
	report.Rating = healthRating(score)
	report.Breakdown = &b
	report.Recommendations = healthRecommendations(b)
	return report
}

// consistencyScore rewards 2 to 4 days between workouts and penalizes an irregular
// rhythm.
func consistencyScore(loads []WorkoutLoad) int {
	gaps := make([]float64, 0, len(loads)-1)
	for i := 1; i < len(loads); i++ {
		gaps = append(gaps, float64(loads[i-1].WorkoutDate.DaysUntil(loads[i].WorkoutDate)))
	}
	avg, vari := mean(gaps), variance(gaps)

	var c float64
	switch {
	case avg >= 2 && avg <= 4:
		c = 25
	case avg < 2:
		c = 20
	case avg <= 7:
		c = 20 - (avg-4)*3
	default:
		c = math.Max(0, 15-(avg-7))
	}
	if vari > gapVarianceLimit {
		c -= math.Min(10, vari/2)
	}
	return int(math.Max(0, math.RoundToEven(c)))
}

// progressScore compares the mean volume per working set of the newer half of the
// period with the older half.
func progressScore(loads []WorkoutLoad) int {
	perSet := make([]float64, len(loads))
	for i, l := range loads {
		perSet[i] = l.TotalVolume / float64(max(l.WorkingSets, 1))
	}
	half := len(perSet) / 2
	first, second := mean(perSet[:half]), mean(perSet[len(perSet)-half:])

	p := subScoreMax / 2
	if first > 0 {
		pct := (second - first) / first * 100
		p = clamp(subScoreMax/2+pct*2, 0, subScoreMax)
	}
	return int(math.RoundToEven(p))
}

// volumeScore rewards a rising and steady volume.
func volumeScore(loads []WorkoutLoad) int {
	volumes := make([]float64, len(loads))
	for i, l := range loads {
		volumes[i] = l.TotalVolume
	}

	var changes []float64
	for i := 1; i < len(volumes); i++ {
		if volumes[i-1] == 0 {
			continue
		}
		changes = append(changes, volumes[i]/volumes[i-1]-1)
	}
	trend := mean(changes)

	var steadiness float64
	if m := mean(volumes); m > 0 {
		steadiness = 1 - math.Min(1, stddev(volumes)/m)
	}
	return int(math.RoundToEven(clamp(subScoreMax/2+trend*50+steadiness*10, 0, subScoreMax)))
}

// recoveryScore loses points for the longest run of high exertion workouts.
func recoveryScore(loads []WorkoutLoad) int {
	streak, longest := 0, 0
	for _, l := range loads {
		if l.PerceivedExertion != nil && *l.PerceivedExertion >= highExertion {
			streak++
			longest = max(longest, streak)
		} else {
			streak = 0
		}
	}
	return max(0, int(subScoreMax)-longest*exertionPenalty)
}

func healthRating(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Attention"
	}
}

func healthRecommendations(b HealthBreakdown) []string {
	var recs []string
	if b.Consistency < 15 {
		recs = append(recs, "Try to maintain more consistent training frequency")
	}
	if b.Progress < 10 {
		recs = append(recs, "Consider progressive overload - gradually increase weight or volume")
	}
	if b.Recovery < 15 {
		recs = append(recs, "Consider adding deload weeks or reducing intensity periodically")
	}
	if b.Volume < 10 {
		recs = append(recs, "Training volume may be inconsistent - try to standardize your workouts")
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep up the great work! Your training looks well-balanced.")
	}
	return recs
}
