package test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/exercises"
	"github.com/2beens/workouttracker/pkg"
)

func (s *IntegrationTestSuite) TestExercises_Catalog() {
	t := s.T()

	var list exercises.ListResponse
	s.do(http.MethodGet, "/exercises", nil, http.StatusOK, &list)
	assert.GreaterOrEqual(t, list.Count, 20, "catalog seeded on migration")
	assert.Len(t, list.Exercises, list.Count)

	s.do(http.MethodGet, "/exercises?muscle_group=legs&equipment=barbell", nil, http.StatusOK, &list)
	require.NotEmpty(t, list.Exercises)
	for _, ex := range list.Exercises {
		assert.Equal(t, "legs", ex.MuscleGroup)
		require.NotNil(t, ex.Equipment)
		assert.Equal(t, "barbell", *ex.Equipment)
	}

	var groups exercises.GroupsResponse
	s.do(http.MethodGet, "/exercises/groups", nil, http.StatusOK, &groups)
	assert.Contains(t, groups.Groups, "chest")
	assert.Contains(t, groups.Groups, "legs")
}

func (s *IntegrationTestSuite) TestExercises_CRUD() {
	t := s.T()

	ex := s.newExercise("it-crud")

	var got exercises.Exercise
	s.do(http.MethodGet, "/exercises/"+ex.ID, nil, http.StatusOK, &got)
	assert.Equal(t, ex.Name, got.Name)
	assert.True(t, got.IsCompound)

	// same name again
	body := s.do(http.MethodPost, "/exercises", map[string]any{"name": ex.Name, "muscle_group": "it-crud"}, http.StatusConflict, nil)
	assert.JSONEq(t, `{"error":"exercise with that name already exists"}`, string(body))

	var updated exercises.Exercise
	s.do(http.MethodPut, "/exercises/"+ex.ID, map[string]any{"description": "slow eccentric"}, http.StatusOK, &updated)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "slow eccentric", *updated.Description)
	assert.Equal(t, ex.Name, updated.Name)

	var deleted exercises.DeleteResponse
	s.do(http.MethodDelete, "/exercises/"+ex.ID, nil, http.StatusOK, &deleted)
	assert.Equal(t, ex.ID, deleted.Exercise.ID)

	s.do(http.MethodGet, "/exercises/"+ex.ID, nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestExercises_DeleteBlockedBySets() {
	t := s.T()

	ex := s.newExercise("it-delete")
	w := s.newWorkout(pkg.Today())
	s.addSets(w.ID,
		weighted(ex.ID, 1, 60, 10),
		weighted(ex.ID, 2, 60, 10),
		weighted(ex.ID, 3, 60, 9),
	)

	body := s.do(http.MethodDelete, "/exercises/"+ex.ID, nil, http.StatusConflict, nil)
	assert.JSONEq(t, `{"error":"cannot delete exercise: it is referenced by logged sets","set_count":3}`, string(body))
	assert.Equal(t, 1, s.countRows(`SELECT COUNT(*) FROM exercises WHERE id = $1`, ex.ID))

	// sets go with the workout, then the exercise can go too
	s.do(http.MethodDelete, "/workouts/"+w.ID, nil, http.StatusOK, nil)
	s.do(http.MethodDelete, "/exercises/"+ex.ID, nil, http.StatusOK, nil)
	assert.Equal(t, 0, s.countRows(`SELECT COUNT(*) FROM personal_records WHERE exercise_id = $1`, ex.ID))
}
