package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/internal/apierr"
	"github.com/2beens/workouttracker/internal/query"
	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type reportsProvider interface {
	Anomalies(ctx context.Context, exerciseID string, days int) (*AnomalyReport, error)
	Health(ctx context.Context, days int) (*HealthReport, error)
	Balance(ctx context.Context, days int) (*BalanceReport, error)
	Deload(ctx context.Context) (*DeloadAdvice, error)
	Overview(ctx context.Context, days int) (*OverviewReport, error)
	NextWorkout(ctx context.Context) (*NextWorkout, error)
	ExerciseOptions(ctx context.Context, muscleGroup, equipment string, limit int) (*ExerciseOptions, error)
	PredictStrength(ctx context.Context, exerciseID string, daysAhead int) (*StrengthForecast, error)
	PredictGoal(ctx context.Context, exerciseID string, target float64) (*GoalForecast, error)
}

type Handler struct {
	reports reportsProvider
}

func NewHandler(reports reportsProvider) *Handler {
	return &Handler{
		reports: reports,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/predictions/1rm/calculate", h.HandleCalculateOneRM).Methods("GET", "OPTIONS").Name("calculate-1rm")
	r.HandleFunc("/predictions/strength/{exerciseId}", h.HandlePredictStrength).Methods("GET", "OPTIONS").Name("predict-strength")
	r.HandleFunc("/predictions/goal/{exerciseId}", h.HandlePredictGoal).Methods("GET", "OPTIONS").Name("predict-goal")
	r.HandleFunc("/analysis/anomalies", h.HandleOverview).Methods("GET", "OPTIONS").Name("analysis-overview")
	r.HandleFunc("/analysis/anomalies/{exerciseId}", h.HandleAnomalies).Methods("GET", "OPTIONS").Name("analysis-anomalies")
	r.HandleFunc("/analysis/health", h.HandleHealth).Methods("GET", "OPTIONS").Name("analysis-health")
	r.HandleFunc("/recommendations/balance", h.HandleBalance).Methods("GET", "OPTIONS").Name("recommendations-balance")
	r.HandleFunc("/recommendations/deload", h.HandleDeload).Methods("GET", "OPTIONS").Name("recommendations-deload")
	r.HandleFunc("/recommendations/next-workout", h.HandleNextWorkout).Methods("GET", "OPTIONS").Name("recommendations-next-workout")
	r.HandleFunc("/recommendations/exercises", h.HandleExerciseOptions).Methods("GET", "OPTIONS").Name("recommendations-exercises")
}

// positiveFloat reads a required query value that must be a finite number above zero.
func positiveFloat(values url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, apierr.Validationf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, apierr.Validationf("invalid %s: must be greater than 0", name)
	}
	return v, nil
}

func (h *Handler) HandleCalculateOneRM(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.calculate1rm")
	defer span.End()

	values := r.URL.Query()

	weight, err := positiveFloat(values, "weight")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	if strings.TrimSpace(values.Get("reps")) == "" {
		pkg.WriteError(w, apierr.Validation("reps is required"))
		return
	}
	reps, err := query.BoundedInt(values, "reps", 0, MinCalcReps, MaxCalcReps)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	formula, err := strength.ParseFormula(strings.ToLower(strings.TrimSpace(values.Get("formula"))))
	if err != nil {
		pkg.WriteError(w, apierr.Validation("invalid formula: expected one of epley, brzycki, lombardi, oconner, average"))
		return
	}

	pkg.WriteJSONResponseOK(w, CalculateOneRM(weight, reps, formula))
}

func (h *Handler) HandleAnomalies(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.anomalies")
	defer span.End()

	exerciseID, err := pkg.UUIDVar(r, "exerciseId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	days, err := query.BoundedInt(r.URL.Query(), "days", 90, 30, 365)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	report, err := h.reports.Anomalies(ctx, exerciseID, days)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			err = apierr.NotFound("exercise not found")
		}
		pkg.WriteError(w, err)
		return
	}
	log.Tracef("anomalies for %s: %d found in %d sessions", exerciseID, report.AnomaliesFound, report.SessionsAnalyzed)
	pkg.WriteJSONResponseOK(w, report)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.health")
	defer span.End()

	days, err := query.BoundedInt(r.URL.Query(), "days", 30, 14, 90)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	report, err := h.reports.Health(ctx, days)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, report)
}

func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.balance")
	defer span.End()

	days, err := query.BoundedInt(r.URL.Query(), "days", 7, 7, 30)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	report, err := h.reports.Balance(ctx, days)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, report)
}

func (h *Handler) HandleDeload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.deload")
	defer span.End()

	advice, err := h.reports.Deload(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, advice)
}

func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.overview")
	defer span.End()

	days, err := query.BoundedInt(r.URL.Query(), "days", 30, 7, 90)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	report, err := h.reports.Overview(ctx, days)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, report)
}

func (h *Handler) HandleNextWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.nextWorkout")
	defer span.End()

	next, err := h.reports.NextWorkout(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, next)
}

func (h *Handler) HandleExerciseOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.exerciseOptions")
	defer span.End()

	values := r.URL.Query()
	muscleGroup := strings.TrimSpace(values.Get("muscle_group"))
	if muscleGroup == "" {
		pkg.WriteError(w, apierr.Validation("muscle_group is required"))
		return
	}
	limit, err := query.BoundedInt(values, "limit", DefaultExerciseOptions, 1, MaxExerciseOptions)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	opts, err := h.reports.ExerciseOptions(ctx, muscleGroup, values.Get("equipment"), limit)
	if err != nil {
		if errors.Is(err, ErrNoExercisesForGroup) {
			err = apierr.NotFound(fmt.Sprintf("No exercises found for muscle group: %s", muscleGroup))
		}
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, opts)
}

func (h *Handler) HandlePredictStrength(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.predictStrength")
	defer span.End()

	exerciseID, err := pkg.UUIDVar(r, "exerciseId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	daysAhead, err := query.BoundedInt(r.URL.Query(), "days_ahead", DefaultDaysAhead, MinDaysAhead, MaxDaysAhead)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	forecast, err := h.reports.PredictStrength(ctx, exerciseID, daysAhead)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			err = apierr.NotFound("exercise not found")
		}
		pkg.WriteError(w, err)
		return
	}
	log.Tracef("strength forecast for %s: %d points", exerciseID, len(forecast.Predictions))
	pkg.WriteJSONResponseOK(w, forecast)
}

func (h *Handler) HandlePredictGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.predictGoal")
	defer span.End()

	exerciseID, err := pkg.UUIDVar(r, "exerciseId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	target, err := positiveFloat(r.URL.Query(), "target_weight")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	forecast, err := h.reports.PredictGoal(ctx, exerciseID, target)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			err = apierr.NotFound("exercise not found")
		}
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, forecast)
}
