package test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/workouts"
	"github.com/2beens/workouttracker/pkg"
)

func (s *IntegrationTestSuite) TestWorkouts_DetailGroupsSetsPerExercise() {
	t := s.T()

	squat := s.newExercise("it-detail-legs")
	row := s.newExercise("it-detail-back")
	w := s.newWorkout(pkg.Today().AddDays(-1))

	// interleaved: squat, row, squat
	s.addSets(w.ID, weighted(squat.ID, 1, 100, 5), weighted(row.ID, 1, 70, 8))
	s.addSets(w.ID, weighted(squat.ID, 2, 105, 5))

	var detail workouts.Detail
	s.do(http.MethodGet, "/workouts/"+w.ID, nil, http.StatusOK, &detail)
	assert.Equal(t, w.ID, detail.ID)
	require.Len(t, detail.Exercises, 2)

	assert.Equal(t, squat.ID, detail.Exercises[0].ExerciseID)
	assert.Equal(t, squat.Name, detail.Exercises[0].Name)
	require.Len(t, detail.Exercises[0].Sets, 2)
	assert.Equal(t, 1, detail.Exercises[0].Sets[0].SetNumber)
	assert.Equal(t, 2, detail.Exercises[0].Sets[1].SetNumber)

	assert.Equal(t, row.ID, detail.Exercises[1].ExerciseID)
	assert.Len(t, detail.Exercises[1].Sets, 1)

	s.do(http.MethodGet, "/workouts/"+"7b0c5e5e-0000-4000-8000-000000000000", nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestWorkouts_BatchRejectedAsAWhole() {
	t := s.T()

	ex := s.newExercise("it-batch")
	w := s.newWorkout(pkg.Today())

	// second set fails validation: nothing is written
	body := s.do(http.MethodPost, "/workouts/"+w.ID+"/sets", []setBody{
		weighted(ex.ID, 1, 50, 10),
		{ExerciseID: ex.ID, SetNumber: 2, Reps: 0},
	}, http.StatusBadRequest, nil)
	assert.Contains(t, string(body), "reps")
	assert.Equal(t, 0, s.countRows(`SELECT COUNT(*) FROM workout_sets WHERE workout_id = $1`, w.ID))

	// second set references an unknown exercise: the insert transaction rolls back
	s.do(http.MethodPost, "/workouts/"+w.ID+"/sets", []setBody{
		weighted(ex.ID, 1, 50, 10),
		weighted("11111111-2222-4333-8444-555555555555", 2, 50, 10),
	}, http.StatusBadRequest, nil)
	assert.Equal(t, 0, s.countRows(`SELECT COUNT(*) FROM workout_sets WHERE workout_id = $1`, w.ID))
	assert.Equal(t, 0, s.countRows(`SELECT COUNT(*) FROM personal_records WHERE exercise_id = $1`, ex.ID))

	// unknown workout
	s.do(http.MethodPost, "/workouts/7b0c5e5e-0000-4000-8000-000000000001/sets", []setBody{
		weighted(ex.ID, 1, 50, 10),
	}, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestWorkouts_ListAndUpdate() {
	t := s.T()

	ex := s.newExercise("it-list")
	date := pkg.Today().AddDays(-400)
	w := s.newWorkout(date)
	s.addSets(w.ID, weighted(ex.ID, 1, 40, 10), weighted(ex.ID, 2, 40, 10))

	var list workouts.ListResponse
	s.do(http.MethodGet, "/workouts?start_date="+date.String()+"&end_date="+date.String(), nil, http.StatusOK, &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, w.ID, list.Workouts[0].ID)
	assert.Equal(t, 2, list.Workouts[0].SetCount)
	assert.Equal(t, 800.0, list.Workouts[0].TotalVolume)

	var updated workouts.Workout
	s.do(http.MethodPut, "/workouts/"+w.ID, map[string]any{"notes": "felt strong"}, http.StatusOK, &updated)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "felt strong", *updated.Notes)
	assert.Equal(t, date.String(), updated.WorkoutDate.String())

	s.do(http.MethodPut, "/workouts/"+w.ID, map[string]any{"perceived_exertion": 11}, http.StatusBadRequest, nil)
}
