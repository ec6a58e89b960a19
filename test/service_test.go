package test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/analytics"
	"github.com/2beens/workouttracker/internal/health"
	"github.com/2beens/workouttracker/pkg"
)

func (s *IntegrationTestSuite) TestHealth_Ready() {
	var ready health.ReadyResponse
	s.do(http.MethodGet, "/health/ready", nil, http.StatusOK, &ready)
	assert.Equal(s.T(), health.ReadyResponse{
		Status: health.StatusReady,
		Checks: health.Checks{Postgres: health.StatusOK, Redis: health.StatusOK},
	}, ready)
}

func (s *IntegrationTestSuite) TestAnalytics_Endpoints() {
	t := s.T()

	var estimate analytics.OneRMEstimate
	s.do(http.MethodGet, "/predictions/1rm/calculate?weight=225&reps=5&formula=epley", nil, http.StatusOK, &estimate)
	assert.Equal(t, 262.5, estimate.Estimated1RM)

	s.do(http.MethodGet, "/predictions/1rm/calculate?weight=225&reps=31", nil, http.StatusBadRequest, nil)
	s.do(http.MethodGet, "/analysis/health?days=30", nil, http.StatusOK, nil)
	s.do(http.MethodGet, "/recommendations/balance", nil, http.StatusOK, nil)
	s.do(http.MethodGet, "/recommendations/deload", nil, http.StatusOK, nil)
	s.do(http.MethodGet, "/analysis/anomalies/7b0c5e5e-0000-4000-8000-000000000003", nil, http.StatusNotFound, nil)
	s.do(http.MethodGet, "/analysis/anomalies?days=30", nil, http.StatusOK, nil)
	s.do(http.MethodGet, "/analysis/anomalies?days=365", nil, http.StatusBadRequest, nil)
	s.do(http.MethodGet, "/recommendations/next-workout", nil, http.StatusOK, nil)
	s.do(http.MethodGet, "/recommendations/exercises", nil, http.StatusBadRequest, nil)
	s.do(http.MethodGet, "/recommendations/exercises?muscle_group=tail", nil, http.StatusNotFound, nil)
	s.do(http.MethodGet, "/predictions/strength/7b0c5e5e-0000-4000-8000-000000000003", nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestAnalytics_Predictions() {
	t := s.T()
	bench := s.newExercise("chest")

	var opts analytics.ExerciseOptions
	s.do(http.MethodGet, "/recommendations/exercises?muscle_group=chest&equipment=barbell&limit=10", nil, http.StatusOK, &opts)
	assert.Equal(t, "chest", opts.MuscleGroup)
	assert.Empty(t, opts.IsolationExercises)
	require.NotZero(t, opts.TotalFound)
	for _, e := range opts.CompoundExercises {
		require.NotNil(t, e.Equipment)
		assert.Equal(t, "barbell", *e.Equipment)
	}

	// two sessions are not enough
	today := pkg.Today()
	for i, w := range []float64{100, 105} {
		workout := s.newWorkout(today.AddDays(-9 + i*3))
		s.addSets(workout.ID, weighted(bench.ID, 1, w, 5))
	}
	s.do(http.MethodGet, "/predictions/strength/"+bench.ID, nil, http.StatusBadRequest, nil)

	workout := s.newWorkout(today.AddDays(-3))
	s.addSets(workout.ID, weighted(bench.ID, 1, 110, 5))

	var forecast analytics.StrengthForecast
	s.do(http.MethodGet, "/predictions/strength/"+bench.ID+"?days_ahead=30", nil, http.StatusOK, &forecast)
	assert.Equal(t, bench.ID, forecast.Exercise.ID)
	assert.Equal(t, 3, forecast.SessionsUsed)
	assert.Equal(t, 128.3, forecast.Current1RM)
	assert.Equal(t, analytics.ModelRidge, forecast.ModelMetrics.ModelType)
	require.NotEmpty(t, forecast.Predictions)
	assert.Equal(t, 1, forecast.Predictions[0].SessionNumber-3)

	var goal analytics.GoalForecast
	s.do(http.MethodGet, "/predictions/goal/"+bench.ID+"?target_weight=120", nil, http.StatusOK, &goal)
	assert.Equal(t, analytics.GoalAchieved, goal.Prediction.Status)
	assert.Equal(t, 120.0, goal.TargetWeight)

	s.do(http.MethodGet, "/predictions/goal/"+bench.ID, nil, http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestMetrics_Exposed() {
	t := s.T()

	// at least one request went through the router
	s.do(http.MethodGet, "/health", nil, http.StatusOK, nil)

	resp, err := s.httpClient.Get(fmt.Sprintf("http://%s:%d/metrics", serverHost, metricsPort))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "backend_main_request")
	assert.Contains(t, string(body), "pgxpool_")
}

func (s *IntegrationTestSuite) TestMCP_OverHTTP() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: serverEndpoint + "/mcp"}, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get_schema",
		"list_exercises",
		"get_workout",
		"get_progress",
		"get_weekly_volume",
		"get_personal_records",
		"get_training_summary",
	}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_schema",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "## workout_sets")
	assert.Contains(t, text, "## personal_records")

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_workout",
		Arguments: map[string]any{"workout_id": "not-a-uuid"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
