package test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/records"
	"github.com/2beens/workouttracker/internal/stats"
	"github.com/2beens/workouttracker/internal/workouts"
	"github.com/2beens/workouttracker/pkg"
)

func (s *IntegrationTestSuite) TestStats_WeeklyVolume() {
	t := s.T()

	chest := s.newExercise("it-wv-chest")
	legs := s.newExercise("it-wv-legs")
	today := pkg.Today()
	lastWeek := today.AddDays(-7)

	w1 := s.newWorkout(lastWeek)
	s.addSets(w1.ID, weighted(chest.ID, 1, 90, 10))

	w2 := s.newWorkout(today)
	warmup := weighted(chest.ID, 1, 50, 10)
	warmup.SetType = "warmup"
	s.addSets(w2.ID,
		warmup,
		weighted(chest.ID, 2, 100, 10),
		weighted(chest.ID, 3, 100, 10),
		weighted(legs.ID, 1, 150, 5),
	)

	var report struct {
		Weeks        int                                     `json:"weeks"`
		WeeklyVolume map[string]map[string]stats.GroupVolume `json:"weekly_volume"`
	}
	s.do(http.MethodGet, "/stats/volume?weeks=2", nil, http.StatusOK, &report)
	assert.Equal(t, 2, report.Weeks)

	thisWeek := report.WeeklyVolume[weekStart(today).String()]
	require.NotNil(t, thisWeek)
	assert.Equal(t, stats.GroupVolume{Volume: 2000, Reps: 20, Sets: 2, Workouts: 1}, thisWeek["it-wv-chest"])
	assert.Equal(t, stats.GroupVolume{Volume: 750, Reps: 5, Sets: 1, Workouts: 1}, thisWeek["it-wv-legs"])

	prevWeek := report.WeeklyVolume[weekStart(lastWeek).String()]
	require.NotNil(t, prevWeek)
	assert.Equal(t, stats.GroupVolume{Volume: 900, Reps: 10, Sets: 1, Workouts: 1}, prevWeek["it-wv-chest"])
	_, hasLegs := prevWeek["it-wv-legs"]
	assert.False(t, hasLegs, "no legs work last week")
}

func (s *IntegrationTestSuite) TestStats_ProgressAndRecords() {
	t := s.T()

	bench := s.newExercise("it-pr")

	w1 := s.newWorkout(pkg.Today().AddDays(-3))
	first := s.addSets(w1.ID, weighted(bench.ID, 1, 225, 5))
	assert.Len(t, first.PersonalRecords, len(records.Types), "first set sets every record")

	w2 := s.newWorkout(pkg.Today().AddDays(-1))
	second := s.addSets(w2.ID, weighted(bench.ID, 1, 230, 5))
	byType := map[string]workouts.RecordResponse{}
	for _, r := range second.PersonalRecords {
		byType[r.RecordType] = r
	}
	assert.NotContains(t, byType, records.TypeReps, "same reps is not a record")
	require.Contains(t, byType, records.TypeWeight)
	require.NotNil(t, byType[records.TypeWeight].PreviousValue)
	assert.Equal(t, 225.0, *byType[records.TypeWeight].PreviousValue)
	assert.Equal(t, 230.0, byType[records.TypeWeight].Value)

	assert.Equal(t, 1, s.countRows(
		`SELECT COUNT(*) FROM personal_records WHERE exercise_id = $1 AND record_type = 'weight' AND is_current`,
		bench.ID,
	))

	var progress stats.ProgressReport
	s.do(http.MethodGet, "/stats/progress/"+bench.ID+"?days=30", nil, http.StatusOK, &progress)
	assert.Equal(t, bench.Name, progress.ExerciseName)
	require.Len(t, progress.Progress, 2)
	require.NotNil(t, progress.Progress[0].Estimated1RM)
	assert.Equal(t, 263.0, *progress.Progress[0].Estimated1RM)

	var prs stats.RecordsReport
	s.do(http.MethodGet, "/stats/prs?muscle_group=it-pr", nil, http.StatusOK, &prs)
	require.Equal(t, 1, prs.Count)
	assert.Equal(t, 230.0, prs.PersonalRecords[0].Records[records.TypeWeight].Value)
	assert.Equal(t, 1150.0, prs.PersonalRecords[0].Records[records.TypeVolume].Value)
	assert.Equal(t, 5.0, prs.PersonalRecords[0].Records[records.TypeReps].Value)

	s.do(http.MethodGet, "/stats/progress/7b0c5e5e-0000-4000-8000-000000000002", nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestStats_Summary() {
	t := s.T()

	// the window has to hold only this test's workouts
	_, err := s.DB.Exec(`TRUNCATE workouts CASCADE;`)
	require.NoError(t, err)

	body := s.do(http.MethodGet, "/stats/summary?days=30", nil, http.StatusOK, nil)
	assert.JSONEq(t, `{
		"days": 30,
		"total_workouts": 0,
		"training_days": 0,
		"total_sets": 0,
		"total_reps": 0,
		"total_volume": 0,
		"exercises_used": 0,
		"avg_perceived_exertion": null,
		"avg_rpe": null,
		"by_muscle_group": []
	}`, string(body))

	chest := s.newExercise("chest")
	legs := s.newExercise("legs")
	back := s.newExercise("back")
	today := pkg.Today()

	push := s.newWorkout(today.AddDays(-1))
	s.addSets(push.ID,
		withRPE(weighted(chest.ID, 1, 100, 10), 8),
		withRPE(weighted(chest.ID, 2, 100, 8), 9),
		setBody{ExerciseID: chest.ID, SetNumber: 3, Weight: ptr(45.0), Reps: 10, SetType: "warmup"},
	)

	var pull workouts.Workout
	s.do(http.MethodPost, "/workouts", map[string]any{
		"workout_date":       today.AddDays(-3).String(),
		"perceived_exertion": 9,
	}, http.StatusCreated, &pull)
	s.addSets(pull.ID,
		weighted(legs.ID, 1, 200, 5),
		setBody{ExerciseID: back.ID, SetNumber: 2, Reps: 12},
	)

	old := s.newWorkout(today.AddDays(-40))
	s.addSets(old.ID, weighted(chest.ID, 1, 300, 5))

	body = s.do(http.MethodGet, "/stats/summary?days=30", nil, http.StatusOK, nil)
	assert.JSONEq(t, `{
		"days": 30,
		"total_workouts": 2,
		"training_days": 2,
		"total_sets": 4,
		"total_reps": 35,
		"total_volume": 2800,
		"exercises_used": 3,
		"avg_perceived_exertion": 8,
		"avg_rpe": 8.5,
		"by_muscle_group": [
			{"muscle_group": "chest", "sets": 2, "volume": 1800},
			{"muscle_group": "back", "sets": 1, "volume": 0},
			{"muscle_group": "legs", "sets": 1, "volume": 1000}
		]
	}`, string(body))

	var summary stats.TrainingSummary
	s.do(http.MethodGet, "/stats/summary?days=60", nil, http.StatusOK, &summary)
	assert.Equal(t, 3, summary.TotalWorkouts)
	assert.Equal(t, 5, summary.TotalSets)
	assert.Equal(t, 4300.0, summary.TotalVolume)

	s.do(http.MethodGet, "/stats/summary?days=0", nil, http.StatusBadRequest, nil)
}
