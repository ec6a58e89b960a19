package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/exercises"
	"github.com/2beens/workouttracker/internal/workouts"
	"github.com/2beens/workouttracker/pkg"
)

// do sends body (if not nil) as JSON, checks the status and decodes the response
// into out (if not nil). The raw body is returned.
func (s *IntegrationTestSuite) do(method, path string, body any, wantStatus int, out any) []byte {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), wantStatus, resp.StatusCode, "%s %s: %s", method, path, respBytes)

	if out != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, out))
	}
	return respBytes
}

// newExercise creates an exercise with a unique name in the given muscle group.
func (s *IntegrationTestSuite) newExercise(muscleGroup string) exercises.Exercise {
	var ex exercises.Exercise
	s.do(http.MethodPost, "/exercises", map[string]any{
		"name":         fmt.Sprintf("%s %s", gofakeit.Adjective(), gofakeit.UUID()[:8]),
		"muscle_group": muscleGroup,
		"equipment":    "barbell",
		"is_compound":  true,
	}, http.StatusCreated, &ex)
	return ex
}

func (s *IntegrationTestSuite) newWorkout(date pkg.Date) workouts.Workout {
	var w workouts.Workout
	s.do(http.MethodPost, "/workouts", map[string]any{
		"workout_date":       date.String(),
		"name":               gofakeit.Word() + " day",
		"perceived_exertion": 7,
	}, http.StatusCreated, &w)
	return w
}

type setBody struct {
	ExerciseID string   `json:"exercise_id"`
	SetNumber  int      `json:"set_number,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Reps       int      `json:"reps"`
	SetType    string   `json:"set_type,omitempty"`
	RPE        *float64 `json:"rpe,omitempty"`
}

func ptr[T any](v T) *T { return &v }

func weighted(exerciseID string, setNumber int, weight float64, reps int) setBody {
	return setBody{ExerciseID: exerciseID, SetNumber: setNumber, Weight: &weight, Reps: reps}
}

func withRPE(set setBody, rpe float64) setBody {
	set.RPE = &rpe
	return set
}

func (s *IntegrationTestSuite) addSets(workoutID string, sets ...setBody) workouts.AddSetsResponse {
	var resp workouts.AddSetsResponse
	s.do(http.MethodPost, "/workouts/"+workoutID+"/sets", sets, http.StatusCreated, &resp)
	return resp
}

func (s *IntegrationTestSuite) countRows(query string, args ...any) int {
	var n int
	require.NoError(s.T(), s.DB.QueryRow(query, args...).Scan(&n))
	return n
}

// weekStart returns the Monday of d's week, as postgres date_trunc('week') does.
func weekStart(d pkg.Date) pkg.Date {
	return d.AddDays(-((int(d.Weekday()) + 6) % 7))
}
