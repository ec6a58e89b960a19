package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/2beens/workouttracker/internal/stats"
)

// VolumeTarget is the weekly working set range of a muscle group.
type VolumeTarget struct {
	MuscleGroup string
	Min         int
	Max         int
	Optimal     int
}

var VolumeTargets = []VolumeTarget{
	{MuscleGroup: "chest", Min: 10, Max: 20, Optimal: 14},
	{MuscleGroup: "back", Min: 10, Max: 20, Optimal: 16},
	{MuscleGroup: "shoulders", Min: 8, Max: 16, Optimal: 12},
	{MuscleGroup: "legs", Min: 12, Max: 22, Optimal: 16},
	{MuscleGroup: "arms", Min: 6, Max: 14, Optimal: 10},
	{MuscleGroup: "core", Min: 4, Max: 12, Optimal: 8},
}

const (
	StatusUndertrained = "undertrained"
	StatusOvertrained  = "overtrained"
	StatusOptimal      = "optimal"
)

// GroupWork is the working set count and volume of one muscle group.
type GroupWork struct {
	MuscleGroup string
	Sets        int
	Volume      float64
}

type GroupBalance struct {
	Sets           int     `json:"sets"`
	Volume         float64 `json:"volume"`
	TargetRange    string  `json:"target_range"`
	Status         string  `json:"status"`
	Recommendation string  `json:"recommendation"`
}

type BalanceScore struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
}

type BalanceReport struct {
	PeriodDays     int                             `json:"period_days"`
	TotalWorkouts  int                             `json:"total_workouts"`
	MuscleGroups   *stats.OrderedMap[GroupBalance] `json:"muscle_groups"`
	MostTrained    string                          `json:"most_trained,omitempty"`
	LeastTrained   string                          `json:"least_trained,omitempty"`
	OverallBalance *BalanceScore                   `json:"overall_balance,omitempty"`
	Message        string                          `json:"message,omitempty"`
}

// AnalyzeBalance checks the working sets of every targeted muscle group against its
// range. Groups outside VolumeTargets are ignored.
func AnalyzeBalance(days, workouts int, work []GroupWork) *BalanceReport {
	report := &BalanceReport{
		PeriodDays:    days,
		TotalWorkouts: workouts,
		MuscleGroups:  stats.NewOrderedMap[GroupBalance](),
	}
	if workouts == 0 {
		report.Message = "No workouts found in this period"
		return report
	}

	byGroup := make(map[string]GroupWork, len(work))
	for _, w := range work {
		byGroup[w.MuscleGroup] = w
	}

	var total float64
	ranked := make([]GroupWork, 0, len(VolumeTargets))
	for _, t := range VolumeTargets {
		w := byGroup[t.MuscleGroup]
		w.MuscleGroup = t.MuscleGroup

		gb := GroupBalance{
			Sets:        w.Sets,
			Volume:      math.RoundToEven(w.Volume),
			TargetRange: fmt.Sprintf("%d-%d", t.Min, t.Max),
		}
		switch {
		case w.Sets < t.Min:
			gb.Status = StatusUndertrained
			gb.Recommendation = fmt.Sprintf("Add %d more sets", t.Min-w.Sets)
		case w.Sets > t.Max:
			gb.Status = StatusOvertrained
			gb.Recommendation = fmt.Sprintf("Consider reducing by %d sets", w.Sets-t.Max)
		default:
			gb.Status = StatusOptimal
			gb.Recommendation = "Volume is good"
		}
		report.MuscleGroups.Set(t.MuscleGroup, gb)

		total += groupScore(t, w.Sets)
		ranked = append(ranked, w)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sets > ranked[j].Sets
	})
	report.MostTrained = ranked[0].MuscleGroup
	report.LeastTrained = ranked[len(ranked)-1].MuscleGroup

	score := int(math.RoundToEven(total / float64(len(VolumeTargets)*100) * 100))
	report.OverallBalance = &BalanceScore{
		Score:  score,
		Rating: balanceRating(score),
	}
	return report
}

// groupScore is 70..100 inside the range, closer to the optimum scoring higher, and
// decays outside it.
func groupScore(t VolumeTarget, sets int) float64 {
	switch {
	case sets >= t.Min && sets <= t.Max:
		maxDistance := max(t.Optimal-t.Min, t.Max-t.Optimal)
		if maxDistance == 0 {
			return 100
		}
		distance := math.Abs(float64(sets - t.Optimal))
		return 100 - distance/float64(maxDistance)*30
	case sets < t.Min:
		return math.Max(0, 50*float64(sets)/float64(t.Min))
	default:
		return math.Max(0, 70-float64(sets-t.Max)*5)
	}
}

func balanceRating(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}
