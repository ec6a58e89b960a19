package stats

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workouttracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=reporter_mocks_test.go -package=stats_test

type statsRepo interface {
	ExerciseName(ctx context.Context, exerciseID string) (string, error)
	ProgressRows(ctx context.Context, exerciseID string, days int) ([]ProgressRow, error)
	WeeklyRows(ctx context.Context, days int) ([]WeeklyRow, error)
	CurrentRecords(ctx context.Context, filters url.Values) ([]RecordRow, error)
	SummaryTotals(ctx context.Context, days int) (*SummaryTotals, error)
	MuscleGroupShares(ctx context.Context, days int) ([]MuscleGroupShare, error)
}

// Reporter shapes the aggregated rows of the store into the statistics reports.
type Reporter struct {
	repo statsRepo
}

func NewReporter(repo statsRepo) *Reporter {
	return &Reporter{
		repo: repo,
	}
}

func (r *Reporter) Progress(ctx context.Context, exerciseID string, days int) (*ProgressReport, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reporter.stats.progress")
	defer span.End()

	name, err := r.repo.ExerciseName(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	rows, err := r.repo.ProgressRows(ctx, exerciseID, days)
	if err != nil {
		return nil, err
	}

	points := BuildProgress(rows)
	span.SetAttributes(attribute.Int("points", len(points)))
	return &ProgressReport{
		ExerciseID:   exerciseID,
		ExerciseName: name,
		Days:         days,
		Count:        len(points),
		Progress:     points,
	}, nil
}

func (r *Reporter) WeeklyVolume(ctx context.Context, weeks int) (*WeeklyVolumeReport, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reporter.stats.weeklyVolume")
	defer span.End()

	rows, err := r.repo.WeeklyRows(ctx, weeks*7)
	if err != nil {
		return nil, err
	}
	return &WeeklyVolumeReport{
		Weeks:        weeks,
		WeeklyVolume: BuildWeeklyVolume(rows),
	}, nil
}

func (r *Reporter) PersonalRecords(ctx context.Context, filters url.Values) (*RecordsReport, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reporter.stats.personalRecords")
	defer span.End()

	rows, err := r.repo.CurrentRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	grouped := GroupRecords(rows)
	return &RecordsReport{
		Count:           len(grouped),
		PersonalRecords: grouped,
	}, nil
}

func (r *Reporter) Summary(ctx context.Context, days int) (*TrainingSummary, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reporter.stats.summary")
	defer span.End()

	totals, err := r.repo.SummaryTotals(ctx, days)
	if err != nil {
		return nil, err
	}
	shares, err := r.repo.MuscleGroupShares(ctx, days)
	if err != nil {
		return nil, err
	}
	return BuildSummary(days, *totals, shares), nil
}
