package stats

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/2beens/workouttracker/internal/apierr"
	"github.com/2beens/workouttracker/internal/query"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type reportsProvider interface {
	Progress(ctx context.Context, exerciseID string, days int) (*ProgressReport, error)
	WeeklyVolume(ctx context.Context, weeks int) (*WeeklyVolumeReport, error)
	PersonalRecords(ctx context.Context, filters url.Values) (*RecordsReport, error)
	Summary(ctx context.Context, days int) (*TrainingSummary, error)
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
	r.HandleFunc("/stats/progress/{exerciseId}", h.HandleProgress).Methods("GET", "OPTIONS").Name("stats-progress")
	r.HandleFunc("/stats/volume", h.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("stats-volume")
	r.HandleFunc("/stats/prs", h.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("stats-prs")
	r.HandleFunc("/stats/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("stats-summary")
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progress")
	defer span.End()

	exerciseID, err := pkg.UUIDVar(r, "exerciseId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	days, err := query.BoundedInt(r.URL.Query(), "days", DefaultProgressDays, 1, MaxLookbackDays)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	report, err := h.reports.Progress(ctx, exerciseID, days)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			err = apierr.NotFound("exercise not found")
		}
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, report)
}

func (h *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.volume")
	defer span.End()

	weeks, err := query.BoundedInt(r.URL.Query(), "weeks", DefaultVolumeWeeks, 1, MaxVolumeWeeks)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	report, err := h.reports.WeeklyVolume(ctx, weeks)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, report)
}

func (h *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.prs")
	defer span.End()

	report, err := h.reports.PersonalRecords(ctx, r.URL.Query())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, report)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()

	days, err := query.BoundedInt(r.URL.Query(), "days", DefaultSummaryDays, 1, MaxLookbackDays)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	summary, err := h.reports.Summary(ctx, days)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteJSONResponseOK(w, summary)
}
