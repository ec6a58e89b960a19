package profile

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/internal/apierr"
	"github.com/2beens/workouttracker/internal/query"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, in ProfileInput) (*Profile, error)
	BodyWeight(ctx context.Context, days int) ([]BodyWeightEntry, error)
	LogBodyWeight(ctx context.Context, in BodyWeightInput) (*BodyWeightEntry, error)
}

type BodyWeightResponse struct {
	Days    int               `json:"days"`
	Count   int               `json:"count"`
	Entries []BodyWeightEntry `json:"entries"`
}

type Handler struct {
	repo  profileRepo
	today func() pkg.Date
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo:  repo,
		today: pkg.Today,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile", h.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/profile/bodyweight", h.HandleBodyWeight).Methods("GET", "OPTIONS").Name("list-bodyweight")
	r.HandleFunc("/profile/bodyweight", h.HandleLogBodyWeight).Methods("POST", "OPTIONS").Name("log-bodyweight")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, err := h.repo.Get(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, p)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	var in ProfileInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if err := in.Validate(h.today()); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	p, err := h.repo.Update(ctx, in)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	log.Debugln("profile updated")
	pkg.WriteJSONResponseOK(w, p)
}

func (h *Handler) HandleBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.bodyweight")
	defer span.End()

	days, err := query.BoundedInt(r.URL.Query(), "days", DefaultBodyWeightDays, 1, 3650)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	entries, err := h.repo.BodyWeight(ctx, days)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	if entries == nil {
		entries = []BodyWeightEntry{}
	}
	pkg.WriteJSONResponseOK(w, BodyWeightResponse{
		Days:    days,
		Count:   len(entries),
		Entries: entries,
	})
}

func (h *Handler) HandleLogBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.logBodyweight")
	defer span.End()

	var in BodyWeightInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if err := in.Validate(h.today()); err != nil {
		pkg.WriteError(w, apierr.Validation(err.Error()))
		return
	}

	entry, err := h.repo.LogBodyWeight(ctx, in)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	log.Debugf("body weight logged for %s: %.1f", entry.LogDate, entry.Weight)
	pkg.WriteJSON(w, entry, http.StatusCreated)
}
