package prediction

import (
	"math"
	"time"

	"routecast/internal/errors"
)

const contributionModel = "ml_model"

var (
	// ErrModelUnfitted is returned when a learned model has no regressor.
	ErrModelUnfitted = errors.New("learned model has no fitted regressor")
	// ErrFeatureMismatch is returned when the vector width differs from the fitted width.
	ErrFeatureMismatch = errors.New("feature vector does not match fitted model")
	// ErrInvalidFactor is returned when the regressor yields a non-positive or non-finite factor.
	ErrInvalidFactor = errors.New("regressor produced an invalid factor")
)

// Regressor is a fitted regression function over fixed-width feature vectors.
type Regressor interface {
	NumFeatures() int
	Predict(x []float64) (float64, error)
	FeatureImportances() []float64
}

// LearnedModel predicts the actual/estimated duration ratio from trip features.
type LearnedModel struct {
	Regressor      Regressor
	WeatherEncoder *LabelEncoder
	FeatureNames   []string
	TrainedAt      time.Time
	TripsCount     int
}

// Kind implements AdjustmentModel.
func (m *LearnedModel) Kind() Kind {
	return KindLearned
}

// ComputeFactor implements AdjustmentModel.
// A regressor that panics is reported as an error so callers can fall back.
func (m *LearnedModel) ComputeFactor(features Features) (adjustment Adjustment, err error) {
	defer func() {
		if r := recover(); r != nil {
			adjustment = Adjustment{}
			err = errors.Errorf("regressor panicked: %v", r)
		}
	}()

	if m == nil || m.Regressor == nil {
		return Adjustment{}, ErrModelUnfitted
	}

	vector := Vector(features, m.WeatherEncoder)
	if len(vector) != m.Regressor.NumFeatures() {
		return Adjustment{}, errors.Wrapf(ErrFeatureMismatch, "got %d features, want %d", len(vector), m.Regressor.NumFeatures())
	}

	factor, err := m.Regressor.Predict(vector)
	if err != nil {
		return Adjustment{}, errors.Wrap(err, "regressor predict")
	}

	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return Adjustment{}, errors.Wrapf(ErrInvalidFactor, "factor %v", factor)
	}

	return Adjustment{
		Factor:        factor,
		Confidence:    LearnedConfidence,
		Contributions: map[string]float64{contributionModel: factor},
	}, nil
}

// Importances pairs feature names with the regressor's importances.
func (m *LearnedModel) Importances() map[string]float64 {
	values := m.Regressor.FeatureImportances()
	importances := make(map[string]float64, len(m.FeatureNames))
	for i, name := range m.FeatureNames {
		if i < len(values) {
			importances[name] = values[i]
		}
	}

	return importances
}
