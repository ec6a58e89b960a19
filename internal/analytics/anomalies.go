package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/pkg"
)

const (
	AnomalyPerformanceDrop  = "performance_drop"
	AnomalyPerformanceSpike = "performance_spike"
	AnomalyVolumeSpike      = "volume_spike"
	AnomalyVolumeDrop       = "volume_drop"
	AnomalyHighFatigue      = "high_fatigue"
	AnomalyLongGap          = "long_gap"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

const (
	DefaultZThreshold  = 2.0
	MinAnomalySessions = 3

	rollingWindow     = 5
	rollingMinPeriods = 2
	fatigueRPE        = 8.5
	fatigueDrop       = -0.05
	fatigueExertion   = 8
	fatigueStreak     = 3
	minLongGapDays    = 14
)

// Session is one workout's aggregate for a single exercise.
type Session struct {
	WorkoutDate       pkg.Date
	MaxWeight         *float64
	RepsAtMaxWeight   *int
	TotalVolume       float64
	AvgRPE            *float64
	PerceivedExertion *int
}

func (s Session) estimated1RM() (float64, bool) {
	if s.MaxWeight == nil || s.RepsAtMaxWeight == nil || *s.MaxWeight <= 0 || *s.RepsAtMaxWeight <= 0 {
		return 0, false
	}
	return strength.Estimate(strength.Epley, *s.MaxWeight, *s.RepsAtMaxWeight), true
}

type Anomaly struct {
	Type     string         `json:"type"`
	Date     pkg.Date       `json:"date"`
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details"`
}

// DetectAnomalies runs every check over the sessions of one exercise and returns the
// findings, most recent first. Fewer than MinAnomalySessions sessions yield none.
func DetectAnomalies(sessions []Session, zThreshold float64) []Anomaly {
	anomalies := []Anomaly{}
	if len(sessions) < MinAnomalySessions {
		return anomalies
	}

	sorted := append([]Session(nil), sessions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WorkoutDate.Before(sorted[j].WorkoutDate.Time)
	})

	anomalies = append(anomalies, performanceAnomalies(sorted, zThreshold)...)
	anomalies = append(anomalies, volumeAnomalies(sorted, zThreshold)...)
	anomalies = append(anomalies, fatigueSignals(sorted)...)
	anomalies = append(anomalies, trainingGaps(sorted)...)

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Date.After(anomalies[j].Date.Time)
	})
	return anomalies
}

type estimatePoint struct {
	date   pkg.Date
	value  float64
	avgRPE *float64
}

func estimateSeries(sessions []Session) []estimatePoint {
	var points []estimatePoint
	for _, s := range sessions {
		if v, ok := s.estimated1RM(); ok {
			points = append(points, estimatePoint{date: s.WorkoutDate, value: v, avgRPE: s.AvgRPE})
		}
	}
	return points
}

// performanceAnomalies compares every estimate against the rolling window of the
// sessions before it.
func performanceAnomalies(sessions []Session, zThreshold float64) []Anomaly {
	points := estimateSeries(sessions)
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.value
	}

	var anomalies []Anomaly
	for i, p := range points {
		window := values[max(0, i-rollingWindow):i]
		if len(window) < rollingMinPeriods {
			continue
		}
		m, sd := mean(window), stddev(window)
		if sd == 0 || math.IsNaN(sd) {
			continue
		}

		z := (p.value - m) / sd
		details := map[string]any{
			"actual_1rm":   strength.Round(p.value, 1),
			"expected_1rm": strength.Round(m, 1),
			"z_score":      strength.Round(z, 2),
		}
		switch {
		case z < -zThreshold:
			severity := SeverityMedium
			if z < -3 {
				severity = SeverityHigh
			}
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyPerformanceDrop,
				Date:     p.date,
				Severity: severity,
				Message:  fmt.Sprintf("Performance dropped significantly (%.1f std below average)", math.Abs(z)),
				Details:  details,
			})
		case z > zThreshold:
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyPerformanceSpike,
				Date:     p.date,
				Severity: SeverityLow,
				Message:  fmt.Sprintf("Exceptional performance! (%.1f std above average)", z),
				Details:  details,
			})
		}
	}
	return anomalies
}

func volumeAnomalies(sessions []Session, zThreshold float64) []Anomaly {
	volumes := make([]float64, len(sessions))
	for i, s := range sessions {
		volumes[i] = s.TotalVolume
	}
	m, sd := mean(volumes), stddev(volumes)
	if sd == 0 || math.IsNaN(sd) {
		return nil
	}

	var anomalies []Anomaly
	for _, s := range sessions {
		z := (s.TotalVolume - m) / sd
		switch {
		case z > zThreshold:
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyVolumeSpike,
				Date:     s.WorkoutDate,
				Severity: SeverityMedium,
				Message:  "Training volume unusually high",
				Details: map[string]any{
					"volume":         math.Round(s.TotalVolume),
					"average_volume": math.Round(m),
					"percent_above":  strength.Round((s.TotalVolume/m-1)*100, 1),
				},
			})
		case z < -zThreshold:
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyVolumeDrop,
				Date:     s.WorkoutDate,
				Severity: SeverityLow,
				Message:  "Training volume unusually low",
				Details: map[string]any{
					"volume":         math.Round(s.TotalVolume),
					"average_volume": math.Round(m),
					"percent_below":  strength.Round((1-s.TotalVolume/m)*100, 1),
				},
			})
		}
	}
	return anomalies
}

// fatigueSignals flags hard sessions with a falling estimate, and a run of high
// exertion workouts at the end of the history.
func fatigueSignals(sessions []Session) []Anomaly {
	var anomalies []Anomaly

	points := estimateSeries(sessions)
	for i := 1; i < len(points); i++ {
		p, prev := points[i], points[i-1]
		if p.avgRPE == nil || *p.avgRPE < fatigueRPE {
			continue
		}
		change := (p.value - prev.value) / prev.value
		if change >= fatigueDrop {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Type:     AnomalyHighFatigue,
			Date:     p.date,
			Severity: SeverityMedium,
			Message:  "High effort but declining performance - possible fatigue",
			Details: map[string]any{
				"rpe":                strength.Round(*p.avgRPE, 1),
				"performance_change": fmt.Sprintf("%.1f%%", change*100),
			},
		})
	}

	if len(sessions) >= fatigueStreak {
		recent := sessions[len(sessions)-fatigueStreak:]
		exertion := make([]int, 0, fatigueStreak)
		for _, s := range recent {
			if s.PerceivedExertion == nil || *s.PerceivedExertion < fatigueExertion {
				return anomalies
			}
			exertion = append(exertion, *s.PerceivedExertion)
		}
		anomalies = append(anomalies, Anomaly{
			Type:     AnomalyHighFatigue,
			Date:     recent[len(recent)-1].WorkoutDate,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("%d consecutive high-exertion workouts - consider a deload", fatigueStreak),
			Details: map[string]any{
				"recent_exertion": exertion,
			},
		})
	}
	return anomalies
}

// trainingGaps flags breaks longer than both two weeks and two deviations above the
// mean gap.
func trainingGaps(sessions []Session) []Anomaly {
	gaps := dayGaps(sessions)
	if len(gaps) == 0 {
		return nil
	}
	m, sd := mean(gaps), stddev(gaps)
	if sd == 0 {
		return nil
	}
	limit := float64(minLongGapDays)
	if !math.IsNaN(sd) {
		limit = math.Max(limit, m+2*sd)
	}

	var anomalies []Anomaly
	for i, gap := range gaps {
		if gap <= limit {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Type:     AnomalyLongGap,
			Date:     sessions[i+1].WorkoutDate,
			Severity: SeverityLow,
			Message:  fmt.Sprintf("Long gap since last workout (%d days)", int(gap)),
			Details: map[string]any{
				"days_gap":    int(gap),
				"average_gap": strength.Round(m, 1),
			},
		})
	}
	return anomalies
}

// dayGaps returns the days between consecutive sessions; sessions must be sorted.
func dayGaps(sessions []Session) []float64 {
	if len(sessions) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(sessions)-1)
	for i := 1; i < len(sessions); i++ {
		gaps = append(gaps, float64(sessions[i-1].WorkoutDate.DaysUntil(sessions[i].WorkoutDate)))
	}
	return gaps
}
