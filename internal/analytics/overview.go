package analytics

import (
	"fmt"
	"sort"

	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/pkg"
)

const (
	MinOverviewRows = 3

	overtrainedShare  = 40.0
	undertrainedShare = 5.0
)

// majorGroups are the only groups flagged for a too small share of the volume.
var majorGroups = map[string]bool{"legs": true, "back": true, "chest": true}

// ExerciseDay is the work done on one exercise within one workout.
type ExerciseDay struct {
	WorkoutDate       pkg.Date
	PerceivedExertion *int
	MuscleGroup       string
	MaxWeight         *float64
	TotalVolume       float64
	AvgRPE            *float64
}

type Imbalance struct {
	MuscleGroup string  `json:"muscle_group"`
	Percentage  float64 `json:"percentage"`
	Issue       string  `json:"issue"`
	Message     string  `json:"message"`
}

type SeverityCounts struct {
	TotalAnomalies int `json:"total_anomalies"`
	HighSeverity   int `json:"high_severity"`
	MediumSeverity int `json:"medium_severity"`
	LowSeverity    int `json:"low_severity"`
}

type OverviewReport struct {
	PeriodDays       int             `json:"period_days"`
	WorkoutsAnalyzed int             `json:"workouts_analyzed"`
	Anomalies        []Anomaly       `json:"anomalies"`
	MuscleImbalances []Imbalance     `json:"muscle_imbalances"`
	Summary          *SeverityCounts `json:"summary,omitempty"`
	Message          string          `json:"message,omitempty"`
}

// BuildOverview runs anomaly detection over whole training days instead of a single
// exercise, and reports muscle groups that take too much or too little of the volume.
func BuildOverview(days int, rows []ExerciseDay, zThreshold float64) *OverviewReport {
	report := &OverviewReport{
		PeriodDays:       days,
		Anomalies:        []Anomaly{},
		MuscleImbalances: []Imbalance{},
	}
	if len(rows) < MinOverviewRows {
		report.Message = "Not enough data for analysis"
		return report
	}

	sessions := dailySessions(rows)
	report.WorkoutsAnalyzed = len(sessions)
	report.Anomalies = DetectAnomalies(sessions, zThreshold)
	report.MuscleImbalances = muscleImbalances(rows)

	counts := &SeverityCounts{TotalAnomalies: len(report.Anomalies)}
	for _, a := range report.Anomalies {
		switch a.Severity {
		case SeverityHigh:
			counts.HighSeverity++
		case SeverityMedium:
			counts.MediumSeverity++
		case SeverityLow:
			counts.LowSeverity++
		}
	}
	report.Summary = counts
	return report
}

// dailySessions folds the rows of each date into one session. The heaviest set of
// the day stands in for the estimate, so it is counted as a single.
func dailySessions(rows []ExerciseDay) []Session {
	type day struct {
		session Session
		rpes    []float64
	}

	one := 1
	byDate := map[string]*day{}
	var order []string
	for _, row := range rows {
		key := row.WorkoutDate.String()
		d, ok := byDate[key]
		if !ok {
			d = &day{session: Session{WorkoutDate: row.WorkoutDate}}
			byDate[key] = d
			order = append(order, key)
		}

		s := &d.session
		if s.PerceivedExertion == nil {
			s.PerceivedExertion = row.PerceivedExertion
		}
		s.TotalVolume += row.TotalVolume
		if row.AvgRPE != nil {
			d.rpes = append(d.rpes, *row.AvgRPE)
		}
		if row.MaxWeight != nil && (s.MaxWeight == nil || *row.MaxWeight > *s.MaxWeight) {
			w := *row.MaxWeight
			s.MaxWeight = &w
			s.RepsAtMaxWeight = &one
		}
	}

	sessions := make([]Session, 0, len(order))
	for _, key := range order {
		d := byDate[key]
		if len(d.rpes) > 0 {
			avg := mean(d.rpes)
			d.session.AvgRPE = &avg
		}
		sessions = append(sessions, d.session)
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].WorkoutDate.Before(sessions[j].WorkoutDate.Time)
	})
	return sessions
}

func muscleImbalances(rows []ExerciseDay) []Imbalance {
	imbalances := []Imbalance{}

	volumes := map[string]float64{}
	var total float64
	for _, row := range rows {
		volumes[row.MuscleGroup] += row.TotalVolume
		total += row.TotalVolume
	}
	if total <= 0 {
		return imbalances
	}

	groups := make([]string, 0, len(volumes))
	for g := range volumes {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		pct := volumes[g] / total * 100
		switch {
		case pct > overtrainedShare:
			imbalances = append(imbalances, Imbalance{
				MuscleGroup: g,
				Percentage:  strength.Round(pct, 1),
				Issue:       StatusOvertrained,
				Message:     fmt.Sprintf("%s accounts for %.0f%% of your training volume", g, pct),
			})
		case pct < undertrainedShare && majorGroups[g]:
			imbalances = append(imbalances, Imbalance{
				MuscleGroup: g,
				Percentage:  strength.Round(pct, 1),
				Issue:       StatusUndertrained,
				Message:     fmt.Sprintf("%s only accounts for %.0f%% of your training", g, pct),
			})
		}
	}
	return imbalances
}
