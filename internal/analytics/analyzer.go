package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/workouttracker/internal/apierr"
	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analytics_test

type analyticsRepo interface {
	Exercise(ctx context.Context, id string) (*ExerciseRef, error)
	Sessions(ctx context.Context, exerciseID string, days int) ([]Session, error)
	WorkoutLoads(ctx context.Context, days int) ([]WorkoutLoad, error)
	GroupWork(ctx context.Context, days int) (int, []GroupWork, error)
	History(ctx context.Context) ([]WorkoutDay, error)
	ExerciseDays(ctx context.Context, days int) ([]ExerciseDay, error)
	LastTrained(ctx context.Context, days int) (map[string]pkg.Date, error)
	LastWorkoutGroups(ctx context.Context) ([]string, error)
	Catalog(ctx context.Context, muscleGroup string) ([]CatalogExercise, error)
}

type AnomalyReport struct {
	Exercise         ExerciseRef `json:"exercise"`
	PeriodDays       int         `json:"period_days"`
	SessionsAnalyzed int         `json:"sessions_analyzed"`
	AnomaliesFound   int         `json:"anomalies_found"`
	Anomalies        []Anomaly   `json:"anomalies"`
	Message          string      `json:"message,omitempty"`
}

// Analyzer turns raw training history into the analysis and recommendation reports.
type Analyzer struct {
	repo       analyticsRepo
	zThreshold float64
	today      func() pkg.Date
}

func NewAnalyzer(repo analyticsRepo) *Analyzer {
	return &Analyzer{
		repo:       repo,
		zThreshold: DefaultZThreshold,
		today:      pkg.Today,
	}
}

func (a *Analyzer) Anomalies(ctx context.Context, exerciseID string, days int) (*AnomalyReport, error) {
	exercise, err := a.repo.Exercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	sessions, err := a.repo.Sessions(ctx, exerciseID, days)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	report := &AnomalyReport{
		Exercise:         *exercise,
		PeriodDays:       days,
		SessionsAnalyzed: len(sessions),
	}
	if len(sessions) < MinAnomalySessions {
		report.Anomalies = []Anomaly{}
		report.Message = fmt.Sprintf("Not enough data for anomaly detection (need at least %d sessions)", MinAnomalySessions)
		return report, nil
	}

	report.Anomalies = DetectAnomalies(sessions, a.zThreshold)
	report.AnomaliesFound = len(report.Anomalies)
	return report, nil
}

func (a *Analyzer) Health(ctx context.Context, days int) (*HealthReport, error) {
	loads, err := a.repo.WorkoutLoads(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("get workout loads: %w", err)
	}
	return HealthScore(days, loads), nil
}

func (a *Analyzer) Balance(ctx context.Context, days int) (*BalanceReport, error) {
	workouts, work, err := a.repo.GroupWork(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("get group work: %w", err)
	}
	return AnalyzeBalance(days, workouts, work), nil
}

func (a *Analyzer) Deload(ctx context.Context) (*DeloadAdvice, error) {
	history, err := a.repo.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return AdviseDeload(history), nil
}

func (a *Analyzer) Overview(ctx context.Context, days int) (*OverviewReport, error) {
	rows, err := a.repo.ExerciseDays(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("get exercise days: %w", err)
	}
	return BuildOverview(days, rows, a.zThreshold), nil
}

func (a *Analyzer) NextWorkout(ctx context.Context) (*NextWorkout, error) {
	var (
		state TrainingState
		err   error
	)
	if state.RecentWorkouts, _, err = a.repo.GroupWork(ctx, NextWorkoutRecentDays); err != nil {
		return nil, fmt.Errorf("get recent work: %w", err)
	}
	if state.Catalog, err = a.repo.Catalog(ctx, ""); err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	if state.RecentWorkouts == 0 {
		return RecommendNextWorkout(state, a.today()), nil
	}

	if state.WeekWorkouts, state.WeekWork, err = a.repo.GroupWork(ctx, NextWorkoutBalanceDays); err != nil {
		return nil, fmt.Errorf("get week work: %w", err)
	}
	if state.LastTrained, err = a.repo.LastTrained(ctx, NextWorkoutRecentDays); err != nil {
		return nil, fmt.Errorf("get last trained: %w", err)
	}
	if state.LastWorkoutGroups, err = a.repo.LastWorkoutGroups(ctx); err != nil {
		return nil, fmt.Errorf("get last workout groups: %w", err)
	}
	return RecommendNextWorkout(state, a.today()), nil
}

func (a *Analyzer) ExerciseOptions(ctx context.Context, muscleGroup, equipment string, limit int) (*ExerciseOptions, error) {
	muscleGroup = strings.ToLower(strings.TrimSpace(muscleGroup))
	catalog, err := a.repo.Catalog(ctx, muscleGroup)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return RecommendExercises(muscleGroup, strings.ToLower(strings.TrimSpace(equipment)), limit, catalog)
}

type StrengthForecast struct {
	Exercise     ExerciseRef     `json:"exercise"`
	Current1RM   float64         `json:"current_estimated_1rm"`
	SessionsUsed int             `json:"training_sessions_used"`
	ModelMetrics ModelMetrics    `json:"model_metrics"`
	Predictions  []StrengthPoint `json:"predictions"`
}

type GoalForecast struct {
	Exercise     ExerciseRef    `json:"exercise"`
	TargetWeight float64        `json:"target_weight"`
	Prediction   GoalPrediction `json:"prediction"`
}

func (a *Analyzer) PredictStrength(ctx context.Context, exerciseID string, daysAhead int) (*StrengthForecast, error) {
	exercise, sessions, model, err := a.strengthModel(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	return &StrengthForecast{
		Exercise:     *exercise,
		Current1RM:   strength.Round(model.Current1RM(), 1),
		SessionsUsed: sessions,
		ModelMetrics: model.Metrics(),
		Predictions:  model.Forecast(daysAhead),
	}, nil
}

func (a *Analyzer) PredictGoal(ctx context.Context, exerciseID string, target float64) (*GoalForecast, error) {
	exercise, _, model, err := a.strengthModel(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	return &GoalForecast{
		Exercise:     *exercise,
		TargetWeight: target,
		Prediction:   model.PredictGoal(target),
	}, nil
}

func (a *Analyzer) strengthModel(ctx context.Context, exerciseID string) (*ExerciseRef, int, *StrengthModel, error) {
	exercise, err := a.repo.Exercise(ctx, exerciseID)
	if err != nil {
		return nil, 0, nil, err
	}

	sessions, err := a.repo.Sessions(ctx, exerciseID, 0)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("get sessions: %w", err)
	}
	if len(sessions) < MinPredictionSessions {
		return nil, 0, nil, apierr.Validationf(
			"Need at least %d workout sessions for predictions. Found: %d", MinPredictionSessions, len(sessions),
		)
	}

	model, err := FitStrengthModel(sessions)
	if err != nil {
		return nil, 0, nil, apierr.Validation("Not enough valid data points for prediction")
	}
	return exercise, len(sessions), model, nil
}
