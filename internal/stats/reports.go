package stats

import (
	"sort"

	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/pkg"
)

const (
	DefaultProgressDays = 90
	DefaultVolumeWeeks  = 8
	DefaultSummaryDays  = 30
	MaxLookbackDays     = 3650
	MaxVolumeWeeks      = 520
)

// ProgressRow is one training day of an exercise as aggregated by the store.
type ProgressRow struct {
	WorkoutDate     pkg.Date
	MaxWeight       *float64
	RepsAtMaxWeight *int
	TotalVolume     float64
	TotalReps       int
	WorkingSets     int
	AvgRPE          *float64
}

type ProgressPoint struct {
	WorkoutDate     pkg.Date `json:"workout_date"`
	MaxWeight       *float64 `json:"max_weight"`
	RepsAtMaxWeight *int     `json:"reps_at_max_weight"`
	TotalVolume     float64  `json:"total_volume"`
	TotalReps       int      `json:"total_reps"`
	WorkingSets     int      `json:"working_sets"`
	AvgRPE          *float64 `json:"avg_rpe"`
	Estimated1RM    *float64 `json:"estimated_1rm"`
}

type ProgressReport struct {
	ExerciseID   string          `json:"exercise_id"`
	ExerciseName string          `json:"exercise_name"`
	Days         int             `json:"days"`
	Count        int             `json:"count"`
	Progress     []ProgressPoint `json:"progress"`
}

// BuildProgress turns per-day rows into chart points in chronological order, adding
// the Epley estimate to each.
func BuildProgress(rows []ProgressRow) []ProgressPoint {
	points := make([]ProgressPoint, 0, len(rows))
	for _, row := range rows {
		p := ProgressPoint{
			WorkoutDate:     row.WorkoutDate,
			MaxWeight:       row.MaxWeight,
			RepsAtMaxWeight: row.RepsAtMaxWeight,
			TotalVolume:     strength.Round(row.TotalVolume, 2),
			TotalReps:       row.TotalReps,
			WorkingSets:     row.WorkingSets,
			Estimated1RM:    strength.EpleyRounded(row.MaxWeight, row.RepsAtMaxWeight),
		}
		if row.AvgRPE != nil {
			rpe := strength.Round(*row.AvgRPE, 1)
			p.AvgRPE = &rpe
		}
		points = append(points, p)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].WorkoutDate.Before(points[j].WorkoutDate.Time)
	})
	return points
}

// WeeklyRow is the working set volume of one muscle group in one week.
type WeeklyRow struct {
	WeekStart   pkg.Date
	MuscleGroup string
	Volume      float64
	Reps        int
	Sets        int
	Workouts    int
}

type GroupVolume struct {
	Volume   float64 `json:"volume"`
	Reps     int     `json:"reps"`
	Sets     int     `json:"sets"`
	Workouts int     `json:"workouts"`
}

// WeeklyVolume maps week start (YYYY-MM-DD) to muscle group to volume. Weeks are
// most recent first and groups alphabetical; a group without working sets in a week
// is absent rather than zero.
type WeeklyVolume = OrderedMap[*OrderedMap[GroupVolume]]

type WeeklyVolumeReport struct {
	Weeks        int           `json:"weeks"`
	WeeklyVolume *WeeklyVolume `json:"weekly_volume"`
}

func BuildWeeklyVolume(rows []WeeklyRow) *WeeklyVolume {
	sorted := append([]WeeklyRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].WeekStart.Equal(sorted[j].WeekStart.Time) {
			return sorted[i].WeekStart.After(sorted[j].WeekStart.Time)
		}
		return sorted[i].MuscleGroup < sorted[j].MuscleGroup
	})

	weeks := NewOrderedMap[*OrderedMap[GroupVolume]]()
	for _, row := range sorted {
		if row.Sets == 0 {
			continue
		}
		key := row.WeekStart.String()
		groups, ok := weeks.Get(key)
		if !ok {
			groups = NewOrderedMap[GroupVolume]()
			weeks.Set(key, groups)
		}
		groups.Set(row.MuscleGroup, GroupVolume{
			Volume:   strength.Round(row.Volume, 2),
			Reps:     row.Reps,
			Sets:     row.Sets,
			Workouts: row.Workouts,
		})
	}
	return weeks
}

// RecordRow is one current personal record joined with its exercise.
type RecordRow struct {
	ExerciseID   string
	ExerciseName string
	MuscleGroup  string
	RecordType   string
	Value        float64
	Date         pkg.Date
}

type RecordValue struct {
	Value float64  `json:"value"`
	Date  pkg.Date `json:"date"`
}

type ExerciseRecords struct {
	ExerciseID   string                 `json:"exercise_id"`
	ExerciseName string                 `json:"exercise_name"`
	MuscleGroup  string                 `json:"muscle_group"`
	Records      map[string]RecordValue `json:"records"`
}

type RecordsReport struct {
	Count           int               `json:"count"`
	PersonalRecords []ExerciseRecords `json:"personal_records"`
}

// GroupRecords regroups record rows per exercise, in first-seen exercise order.
// Should two rows share an exercise and record type, the later row wins.
func GroupRecords(rows []RecordRow) []ExerciseRecords {
	grouped := []ExerciseRecords{}
	index := map[string]int{}
	for _, row := range rows {
		i, ok := index[row.ExerciseID]
		if !ok {
			i = len(grouped)
			index[row.ExerciseID] = i
			grouped = append(grouped, ExerciseRecords{
				ExerciseID:   row.ExerciseID,
				ExerciseName: row.ExerciseName,
				MuscleGroup:  row.MuscleGroup,
				Records:      map[string]RecordValue{},
			})
		}
		grouped[i].Records[row.RecordType] = RecordValue{Value: row.Value, Date: row.Date}
	}
	return grouped
}

// SummaryTotals are the window aggregates. Averages stay nil when nothing
// contributed to them.
type SummaryTotals struct {
	TotalWorkouts        int
	TrainingDays         int
	TotalSets            int
	TotalReps            int
	TotalVolume          float64
	ExercisesUsed        int
	AvgPerceivedExertion *float64
	AvgRPE               *float64
}

type MuscleGroupShare struct {
	MuscleGroup string  `json:"muscle_group"`
	Sets        int     `json:"sets"`
	Volume      float64 `json:"volume"`
}

type TrainingSummary struct {
	Days                 int                `json:"days"`
	TotalWorkouts        int                `json:"total_workouts"`
	TrainingDays         int                `json:"training_days"`
	TotalSets            int                `json:"total_sets"`
	TotalReps            int                `json:"total_reps"`
	TotalVolume          float64            `json:"total_volume"`
	ExercisesUsed        int                `json:"exercises_used"`
	AvgPerceivedExertion *float64           `json:"avg_perceived_exertion"`
	AvgRPE               *float64           `json:"avg_rpe"`
	ByMuscleGroup        []MuscleGroupShare `json:"by_muscle_group"`
}

// BuildSummary rounds the averages to one decimal and orders the breakdown by set
// count, most trained first.
func BuildSummary(days int, totals SummaryTotals, groups []MuscleGroupShare) *TrainingSummary {
	summary := &TrainingSummary{
		Days:          days,
		TotalWorkouts: totals.TotalWorkouts,
		TrainingDays:  totals.TrainingDays,
		TotalSets:     totals.TotalSets,
		TotalReps:     totals.TotalReps,
		TotalVolume:   strength.Round(totals.TotalVolume, 2),
		ExercisesUsed: totals.ExercisesUsed,
		ByMuscleGroup: append([]MuscleGroupShare{}, groups...),
	}
	if totals.AvgPerceivedExertion != nil {
		v := strength.Round(*totals.AvgPerceivedExertion, 1)
		summary.AvgPerceivedExertion = &v
	}
	if totals.AvgRPE != nil {
		v := strength.Round(*totals.AvgRPE, 1)
		summary.AvgRPE = &v
	}

	sort.SliceStable(summary.ByMuscleGroup, func(i, j int) bool {
		a, b := summary.ByMuscleGroup[i], summary.ByMuscleGroup[j]
		if a.Sets != b.Sets {
			return a.Sets > b.Sets
		}
		return a.MuscleGroup < b.MuscleGroup
	})
	return summary
}
