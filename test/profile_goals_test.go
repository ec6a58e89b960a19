package test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/goals"
	"github.com/2beens/workouttracker/internal/profile"
	"github.com/2beens/workouttracker/pkg"
)

func (s *IntegrationTestSuite) TestProfile_Update() {
	t := s.T()

	var p profile.Profile
	s.do(http.MethodPut, "/profile", map[string]any{"weight_unit": "kg", "training_days_per_week": 4}, http.StatusOK, &p)
	assert.Equal(t, "kg", p.WeightUnit)

	s.do(http.MethodGet, "/profile", nil, http.StatusOK, &p)
	assert.Equal(t, "kg", p.WeightUnit)
	require.NotNil(t, p.TrainingDaysPerWeek)
	assert.Equal(t, 4, *p.TrainingDaysPerWeek)

	s.do(http.MethodPut, "/profile", map[string]any{"weight_unit": "stone"}, http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestProfile_BodyWeightUpsert() {
	t := s.T()

	date := pkg.Today().AddDays(-3)
	s.do(http.MethodPost, "/profile/bodyweight", map[string]any{"log_date": date.String(), "weight": 80.5}, http.StatusCreated, nil)

	var entry profile.BodyWeightEntry
	s.do(http.MethodPost, "/profile/bodyweight", map[string]any{"log_date": date.String(), "weight": 81}, http.StatusCreated, &entry)
	assert.Equal(t, 81.0, entry.Weight)

	assert.Equal(t, 1, s.countRows(`SELECT COUNT(*) FROM body_weight_log WHERE log_date = $1`, date.String()))

	var list profile.BodyWeightResponse
	s.do(http.MethodGet, "/profile/bodyweight?days=7", nil, http.StatusOK, &list)
	found := 0
	for _, e := range list.Entries {
		if e.LogDate.String() == date.String() {
			found++
			assert.Equal(t, 81.0, e.Weight)
		}
	}
	assert.Equal(t, 1, found)
}

func (s *IntegrationTestSuite) TestGoals_Lifecycle() {
	t := s.T()

	ex := s.newExercise("it-goals")

	var goal goals.Goal
	s.do(http.MethodPost, "/goals", map[string]any{
		"exercise_id":  ex.ID,
		"goal_type":    "strength",
		"target_value": 140,
		"target_date":  pkg.Today().AddDays(60).String(),
	}, http.StatusCreated, &goal)
	assert.Equal(t, "active", goal.Status)
	require.NotNil(t, goal.ExerciseName)
	assert.Equal(t, ex.Name, *goal.ExerciseName)
	assert.Nil(t, goal.AchievedAt)

	var list goals.ListResponse
	s.do(http.MethodGet, "/goals?status=active", nil, http.StatusOK, &list)
	ids := make([]string, 0, list.Count)
	for _, g := range list.Goals {
		ids = append(ids, g.ID)
	}
	assert.Contains(t, ids, goal.ID)

	var achieved goals.Goal
	s.do(http.MethodPut, "/goals/"+goal.ID, map[string]any{"status": "achieved"}, http.StatusOK, &achieved)
	assert.Equal(t, "achieved", achieved.Status)
	assert.NotNil(t, achieved.AchievedAt)

	s.do(http.MethodDelete, "/goals/"+goal.ID, nil, http.StatusOK, nil)
	s.do(http.MethodDelete, "/goals/"+goal.ID, nil, http.StatusNotFound, nil)

	s.do(http.MethodPost, "/goals", map[string]any{
		"exercise_id":  "11111111-2222-4333-8444-555555555555",
		"goal_type":    "strength",
		"target_value": 100,
	}, http.StatusBadRequest, nil)
}
