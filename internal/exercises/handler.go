package exercises

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/internal/apierr"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context, filters url.Values) ([]Exercise, error)
	Groups(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	Add(ctx context.Context, in ExerciseInput) (*Exercise, error)
	Update(ctx context.Context, id string, in ExerciseInput) (*Exercise, error)
	Delete(ctx context.Context, id string) (*DeletedExercise, error)
}

type ListResponse struct {
	Count     int        `json:"count"`
	Exercises []Exercise `json:"exercises"`
}

type GroupsResponse struct {
	Groups []string `json:"groups"`
}

type DeleteResponse struct {
	Message  string          `json:"message"`
	Exercise DeletedExercise `json:"exercise"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/groups", h.HandleGroups).Methods("GET", "OPTIONS").Name("exercise-groups")
	r.HandleFunc("/exercises/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := h.repo.List(ctx, r.URL.Query())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSONResponseOK(w, ListResponse{
		Count:     len(exercises),
		Exercises: exercises,
	})
}

func (h *Handler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.groups")
	defer span.End()

	groups, err := h.repo.Groups(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	if groups == nil {
		groups = []string{}
	}
	pkg.WriteJSONResponseOK(w, GroupsResponse{Groups: groups})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	exercise, err := h.repo.Get(ctx, id)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	pkg.WriteJSONResponseOK(w, exercise)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	var in ExerciseInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	in.Normalize()
	if err := in.ValidateCreate(); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	exercise, err := h.repo.Add(ctx, in)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}

	log.Debugf("new exercise added: %s [%s]", exercise.Name, exercise.ID)
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var in ExerciseInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	in.Normalize()
	if err := in.ValidateUpdate(); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	exercise, err := h.repo.Update(ctx, id, in)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	pkg.WriteJSONResponseOK(w, exercise)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	deleted, err := h.repo.Delete(ctx, id)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}

	log.Debugf("exercise %s [%s] deleted", deleted.Name, deleted.ID)
	pkg.WriteJSONResponseOK(w, DeleteResponse{
		Message:  "exercise deleted",
		Exercise: *deleted,
	})
}

func toAPIError(err error) error {
	var inUse *InUseError
	switch {
	case errors.As(err, &inUse):
		return apierr.Conflict(
			"cannot delete exercise: it is referenced by logged sets",
			err,
		).With("set_count", inUse.SetCount)
	case errors.Is(err, ErrExerciseNotFound):
		return apierr.NotFound("exercise not found")
	case errors.Is(err, ErrExerciseExists):
		return apierr.Conflict("exercise with that name already exists", err)
	default:
		return err
	}
}
