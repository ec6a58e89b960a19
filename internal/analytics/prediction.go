package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/2beens/workouttracker/internal/strength"
	"github.com/2beens/workouttracker/pkg"
)

const (
	MinPredictionSessions = 3
	DefaultDaysAhead      = 30
	MinDaysAhead          = 7
	MaxDaysAhead          = 180
	MaxGoalDays           = 365

	ModelRidge = "ridge"

	GoalAchieved   = "already_achieved"
	GoalAchievable = "achievable"
	GoalLongTerm   = "long_term"
	GoalUncertain  = "uncertain"

	ridgeAlpha       = 1.0
	rollingAvgWindow = 3
	firstGapDays     = 7
	featureCount     = 5
)

var ErrNotEnoughData = errors.New("not enough valid data points for prediction")

type ModelMetrics struct {
	ModelType  string  `json:"model_type"`
	DataPoints int     `json:"data_points"`
	MAE        float64 `json:"mae"`
	RMSE       float64 `json:"rmse"`
	RSquared   float64 `json:"r_squared"`
}

type StrengthPoint struct {
	Date          pkg.Date `json:"date"`
	SessionNumber int      `json:"session_number"`
	Predicted1RM  float64  `json:"predicted_1rm"`
	DaysFromNow   int      `json:"days_from_now"`
}

// StrengthModel is a ridge regression of the estimated 1RM over the training
// timeline of one exercise.
type StrengthModel struct {
	means     [featureCount]float64
	scales    [featureCount]float64
	coef      []float64
	intercept float64

	lastDate      pkg.Date
	lastDays      float64
	lastSession   int
	lastCumVolume float64
	first1RM      float64
	last1RM       float64
	avgGap        float64
	metrics       ModelMetrics
}

// FitStrengthModel trains on every session with an estimate. Each session is
// described by days since the first one, its number, the cumulative volume, the
// rolling mean of the last three estimates and the days since the session before.
func FitStrengthModel(sessions []Session) (*StrengthModel, error) {
	sorted := append([]Session(nil), sessions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WorkoutDate.Before(sorted[j].WorkoutDate.Time)
	})

	var (
		x         [][featureCount]float64
		y         []float64
		dates     []pkg.Date
		cumVolume float64
	)
	for _, s := range sorted {
		v, ok := s.estimated1RM()
		if !ok {
			continue
		}
		cumVolume += s.TotalVolume
		i := len(y)
		y = append(y, v)

		gap := float64(firstGapDays)
		if i > 0 {
			gap = float64(dates[i-1].DaysUntil(s.WorkoutDate))
		}
		var since float64
		if i > 0 {
			since = float64(dates[0].DaysUntil(s.WorkoutDate))
		}
		dates = append(dates, s.WorkoutDate)

		x = append(x, [featureCount]float64{
			since,
			float64(i + 1),
			cumVolume,
			mean(y[max(0, i+1-rollingAvgWindow):]),
			gap,
		})
	}
	if len(y) < MinPredictionSessions {
		return nil, ErrNotEnoughData
	}

	m := &StrengthModel{}
	m.standardize(x)
	m.fit(x, y)

	n := len(y)
	last := x[n-1]
	m.lastDate = dates[n-1]
	m.lastDays = last[0]
	m.lastSession = int(last[1])
	m.lastCumVolume = last[2]
	m.first1RM = y[0]
	m.last1RM = y[n-1]

	gaps := make([]float64, n)
	for i := range x {
		gaps[i] = x[i][4]
	}
	m.avgGap = mean(gaps)

	m.metrics = m.evaluate(x, y)
	return m, nil
}

// standardize keeps the mean and population deviation of every feature. A constant
// feature keeps a scale of one.
func (m *StrengthModel) standardize(x [][featureCount]float64) {
	col := make([]float64, len(x))
	for j := 0; j < featureCount; j++ {
		for i := range x {
			col[i] = x[i][j]
		}
		mu := mean(col)
		var ss float64
		for _, v := range col {
			ss += (v - mu) * (v - mu)
		}
		sd := math.Sqrt(ss / float64(len(col)))
		if sd == 0 {
			sd = 1
		}
		m.means[j], m.scales[j] = mu, sd
	}
}

func (m *StrengthModel) scaled(f [featureCount]float64) []float64 {
	z := make([]float64, featureCount)
	for j := range z {
		z[j] = (f[j] - m.means[j]) / m.scales[j]
	}
	return z
}

// fit solves (Z'Z + alpha*I)b = Z'(y - mean(y)) on the standardized features Z. The intercept is
// left out of the penalty, so it is the mean target.
func (m *StrengthModel) fit(x [][featureCount]float64, y []float64) {
	m.intercept = mean(y)

	a := make([][]float64, featureCount)
	for j := range a {
		a[j] = make([]float64, featureCount)
		a[j][j] = ridgeAlpha
	}
	b := make([]float64, featureCount)
	for i := range x {
		z := m.scaled(x[i])
		for j := 0; j < featureCount; j++ {
			b[j] += z[j] * (y[i] - m.intercept)
			for k := 0; k < featureCount; k++ {
				a[j][k] += z[j] * z[k]
			}
		}
	}
	m.coef = solve(a, b)
}

func (m *StrengthModel) predict(f [featureCount]float64) float64 {
	p := m.intercept
	for j, z := range m.scaled(f) {
		p += m.coef[j] * z
	}
	return p
}

func (m *StrengthModel) evaluate(x [][featureCount]float64, y []float64) ModelMetrics {
	var absSum, sqSum, ssTot float64
	mu := mean(y)
	for i := range x {
		diff := y[i] - m.predict(x[i])
		absSum += math.Abs(diff)
		sqSum += diff * diff
		ssTot += (y[i] - mu) * (y[i] - mu)
	}
	n := float64(len(y))

	r2 := 0.0
	switch {
	case ssTot > 0:
		r2 = 1 - sqSum/ssTot
	case sqSum == 0:
		r2 = 1
	}
	return ModelMetrics{
		ModelType:  ModelRidge,
		DataPoints: len(y),
		MAE:        strength.Round(absSum/n, 2),
		RMSE:       strength.Round(math.Sqrt(sqSum/n), 2),
		RSquared:   strength.Round(r2, 3),
	}
}

func (m *StrengthModel) Metrics() ModelMetrics { return m.metrics }

// Current1RM is the estimate of the latest session.
func (m *StrengthModel) Current1RM() float64 { return m.last1RM }

// point predicts the session ahead sessions after the last one,
// assuming the usual gap between sessions and the usual volume per session.
func (m *StrengthModel) point(ahead int) StrengthPoint {
	step := float64(ahead) * m.avgGap
	f := [featureCount]float64{
		m.lastDays + step,
		float64(m.lastSession + ahead),
		m.lastCumVolume + float64(ahead)*m.lastCumVolume/float64(m.lastSession),
		m.last1RM,
		m.avgGap,
	}
	return StrengthPoint{
		Date:          m.lastDate.AddDays(int(step)),
		SessionNumber: m.lastSession + ahead,
		Predicted1RM:  strength.Round(m.predict(f), 1),
		DaysFromNow:   int(step),
	}
}

// Forecast predicts every expected session within daysAhead days, at least one.
func (m *StrengthModel) Forecast(daysAhead int) []StrengthPoint {
	sessions := max(1, int(float64(daysAhead)/m.avgGap))
	points := make([]StrengthPoint, 0, sessions)
	for i := 1; i <= sessions; i++ {
		points = append(points, m.point(i))
	}
	return points
}

type GoalPrediction struct {
	Status         string    `json:"status"`
	Message        string    `json:"message,omitempty"`
	TargetWeight   *float64  `json:"target_weight,omitempty"`
	PredictedDate  *pkg.Date `json:"predicted_date,omitempty"`
	DaysFromNow    *int      `json:"days_from_now,omitempty"`
	SessionsNeeded *int      `json:"sessions_needed,omitempty"`
	Current1RM     *float64  `json:"current_1rm,omitempty"`
	EstimatedDays  *int      `json:"estimated_days,omitempty"`
}

// PredictGoal finds the first day within a year on which the forecast reaches the
// target. Past that it falls back to the average gain per day so far.
func (m *StrengthModel) PredictGoal(target float64) GoalPrediction {
	current := strength.Round(m.last1RM, 1)
	if target <= m.last1RM {
		return GoalPrediction{
			Status:  GoalAchieved,
			Message: fmt.Sprintf("You can already lift %g (current 1RM: %g)", target, current),
		}
	}

	for days := 1; days <= MaxGoalDays; days++ {
		sessions := int(float64(days) / m.avgGap)
		if sessions < 1 {
			continue
		}
		p := m.point(sessions)
		if p.Predicted1RM < target {
			continue
		}
		sessionsNeeded, daysFromNow := sessions, days
		return GoalPrediction{
			Status:         GoalAchievable,
			TargetWeight:   &target,
			PredictedDate:  &p.Date,
			DaysFromNow:    &daysFromNow,
			SessionsNeeded: &sessionsNeeded,
			Current1RM:     &current,
		}
	}

	if m.lastDays > 0 {
		rate := (m.last1RM - m.first1RM) / m.lastDays
		if rate > 0 {
			estimated := int((target - m.last1RM) / rate)
			return GoalPrediction{
				Status:        GoalLongTerm,
				Message:       fmt.Sprintf("At current rate, this could take ~%d days", estimated),
				EstimatedDays: &estimated,
				Current1RM:    &current,
			}
		}
	}
	return GoalPrediction{
		Status:  GoalUncertain,
		Message: "Not enough data to predict this target",
	}
}

// solve runs Gaussian elimination with partial pivoting on a square system.
func solve(a [][]float64, b []float64) []float64 {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		if a[col][col] == 0 {
			continue
		}
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		if a[r][r] == 0 {
			continue
		}
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x
}
