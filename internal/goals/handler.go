package goals

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

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	List(ctx context.Context, filters url.Values) ([]Goal, error)
	Add(ctx context.Context, in GoalInput) (*Goal, error)
	Update(ctx context.Context, id string, in GoalInput) (*Goal, error)
	Delete(ctx context.Context, id string) error
}

type ListResponse struct {
	Count int    `json:"count"`
	Goals []Goal `json:"goals"`
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/goals", h.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/goals/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	r.HandleFunc("/goals/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	goals, err := h.repo.List(ctx, r.URL.Query())
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	if goals == nil {
		goals = []Goal{}
	}
	pkg.WriteJSONResponseOK(w, ListResponse{
		Count: len(goals),
		Goals: goals,
	})
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	var in GoalInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if err := in.ValidateCreate(); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	goal, err := h.repo.Add(ctx, in)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	log.Debugf("new goal added: %s [%s]", goal.ID, goal.GoalType)
	pkg.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var in GoalInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if err := in.ValidateUpdate(); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	goal, err := h.repo.Update(ctx, id, in)
	if err != nil {
		pkg.WriteError(w, toAPIError(err))
		return
	}
	pkg.WriteJSONResponseOK(w, goal)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
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
	log.Debugf("goal %s deleted", id)
	pkg.WriteJSONResponseOK(w, map[string]string{
		"message": "goal deleted",
		"id":      id,
	})
}

func toAPIError(err error) error {
	switch {
	case errors.Is(err, ErrGoalNotFound):
		return apierr.NotFound(err.Error())
	case errors.Is(err, ErrInvalidExercise):
		return apierr.Referential(err.Error(), err)
	}
	return err
}
