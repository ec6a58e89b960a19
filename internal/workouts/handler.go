package workouts

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/apierr"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, filters url.Values) ([]Summary, error)
	Detail(ctx context.Context, id string) (*Detail, error)
	Add(ctx context.Context, in WorkoutInput) (*Workout, error)
	Update(ctx context.Context, id string, in WorkoutInput) (*Workout, error)
	Delete(ctx context.Context, id string) error
	AddSets(ctx context.Context, workoutID string, sets []SetInput) (*AddSetsResult, error)
	UpdateSet(ctx context.Context, workoutID, setID string, in SetInput) (*Set, error)
	DeleteSet(ctx context.Context, workoutID, setID string) error
}

type ListResponse struct {
	Count    int       `json:"count"`
	Workouts []Summary `json:"workouts"`
}

type AddSetsResponse struct {
	Count           int              `json:"count"`
	Sets            []Set            `json:"sets"`
	PersonalRecords []RecordResponse `json:"personal_records"`
}

type RecordResponse struct {
	ExerciseID    string   `json:"exercise_id"`
	RecordType    string   `json:"record_type"`
	Value         float64  `json:"value"`
	PreviousValue *float64 `json:"previous_value,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/sets", h.HandleAddSets).Methods("POST", "OPTIONS").Name("new-sets")
	r.HandleFunc("/workouts/{id}/sets/{setId}", h.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/workouts/{id}/sets/{setId}", h.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := h.repo.List(ctx, r.URL.Query())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	if workouts == nil {
		workouts = []Summary{}
	}

	pkg.WriteJSONResponseOK(w, ListResponse{
		Count:    len(workouts),
		Workouts: workouts,
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	detail, err := h.repo.Detail(ctx, id)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	pkg.WriteJSONResponseOK(w, detail)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	var in WorkoutInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if err := in.Validate(); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	workout, err := h.repo.Add(ctx, in)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}

	h.metricsManager.CounterWorkoutsCreated.Inc()
	log.Debugf("new workout added: %s [%s]", workout.WorkoutDate, workout.ID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var in WorkoutInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if err := in.Validate(); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	workout, err := h.repo.Update(ctx, id, in)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	pkg.WriteJSONResponseOK(w, workout)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}

	log.Debugf("workout [%s] deleted", id)
	pkg.WriteJSONResponseOK(w, MessageResponse{Message: "workout deleted", ID: id})
}

// HandleAddSets logs one set or an array of sets. The whole body is validated
// before anything is written.
func (h *Handler) HandleAddSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.new")
	defer span.End()

	workoutID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	body, err := pkg.ReadJSONBody(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	sets, err := ParseSetsPayload(body)
	if err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}
	span.SetAttributes(attribute.Int("sets", len(sets)))

	result, err := h.repo.AddSets(ctx, workoutID, sets)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}

	h.metricsManager.CounterSetsLogged.Add(float64(len(result.Sets)))
	resp := AddSetsResponse{
		Count:           len(result.Sets),
		Sets:            result.Sets,
		PersonalRecords: []RecordResponse{},
	}
	for _, rec := range result.Records {
		h.metricsManager.CounterPersonalRecords.WithLabelValues(rec.RecordType).Inc()
		resp.PersonalRecords = append(resp.PersonalRecords, RecordResponse{
			ExerciseID:    rec.ExerciseID,
			RecordType:    rec.RecordType,
			Value:         rec.Value,
			PreviousValue: rec.PreviousValue,
		})
	}

	log.Debugf("workout [%s]: %d sets logged, %d new records", workoutID, len(result.Sets), len(result.Records))
	pkg.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.update")
	defer span.End()

	workoutID, setID, err := setVars(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var in SetInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if err := in.ValidateUpdate(); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	set, err := h.repo.UpdateSet(ctx, workoutID, setID, in)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	pkg.WriteJSONResponseOK(w, set)
}

func (h *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.delete")
	defer span.End()

	workoutID, setID, err := setVars(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	if err := h.repo.DeleteSet(ctx, workoutID, setID); err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	pkg.WriteJSONResponseOK(w, MessageResponse{Message: "set deleted", ID: setID})
}

func setVars(r *http.Request) (string, string, error) {
	workoutID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		return "", "", err
	}
	setID, err := pkg.UUIDVar(r, "setId")
	if err != nil {
		return "", "", err
	}
	return workoutID, setID, nil
}

func toAPIError(err error) error {
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		return apierr.NotFound("workout not found")
	case errors.Is(err, ErrSetNotFound):
		return apierr.NotFound("set not found")
	case errors.Is(err, ErrInvalidExercise):
		return apierr.Referential("invalid exercise_id: exercise does not exist", err)
	case errors.Is(err, ErrInvalidSet), errors.Is(err, ErrInvalidWorkout):
		return apierr.New(http.StatusBadRequest, err.Error(), nil)
	default:
		return err
	}
}
