package prediction

import (
	"math"
	"testing"

	"routecast/internal/domain/entity"
	"routecast/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRegressor struct {
	width       int
	value       float64
	err         error
	importances []float64
	lastInput   []float64
	panics      bool
}

func (s *stubRegressor) NumFeatures() int { return s.width }

func (s *stubRegressor) Predict(x []float64) (float64, error) {
	s.lastInput = x
	if s.panics {
		panic("index out of range [7] with length 1")
	}

	return s.value, s.err
}

func (s *stubRegressor) FeatureImportances() []float64 { return s.importances }

func TestLearnedModel_ComputeFactor(t *testing.T) {
	regressor := &stubRegressor{width: 9, value: 1.32}
	model := &LearnedModel{
		Regressor:      regressor,
		WeatherEncoder: FitLabelEncoder([]string{"rain", "clear", "fog"}),
		FeatureNames:   FeatureNames(true),
	}

	adjustment, err := model.ComputeFactor(Features{
		Distance:         12000,
		BaseDuration:     900,
		Hour:             17,
		DayOfWeek:        4,
		WeatherCondition: "rain",
		Temperature:      29.5,
		IncidentCount:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1.32, adjustment.Factor)
	assert.Equal(t, LearnedConfidence, adjustment.Confidence)
	assert.Equal(t, map[string]float64{"ml_model": 1.32}, adjustment.Contributions)
	assert.Equal(t, []float64{12000, 900, 17, 4, 0, 0, 1, 2, 29.5}, regressor.lastInput)
}

func TestLearnedModel_UnseenWeatherEncodesToZero(t *testing.T) {
	regressor := &stubRegressor{width: 9, value: 1.1}
	model := &LearnedModel{
		Regressor:      regressor,
		WeatherEncoder: FitLabelEncoder([]string{"rain", "fog"}),
	}

	_, err := model.ComputeFactor(Features{WeatherCondition: "snow", Temperature: 20})

	require.NoError(t, err)
	assert.Equal(t, 0.0, regressor.lastInput[7])
}

func TestLearnedModel_Failures(t *testing.T) {
	tests := []struct {
		name     string
		model    *LearnedModel
		expected error
	}{
		{
			name:     "nil model",
			model:    nil,
			expected: ErrModelUnfitted,
		},
		{
			name:     "no regressor",
			model:    &LearnedModel{},
			expected: ErrModelUnfitted,
		},
		{
			name:     "width mismatch",
			model:    &LearnedModel{Regressor: &stubRegressor{width: 9, value: 1}},
			expected: ErrFeatureMismatch,
		},
		{
			name:     "negative factor",
			model:    &LearnedModel{Regressor: &stubRegressor{width: 8, value: -0.4}},
			expected: ErrInvalidFactor,
		},
		{
			name:     "nan factor",
			model:    &LearnedModel{Regressor: &stubRegressor{width: 8, value: math.NaN()}},
			expected: ErrInvalidFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.model.ComputeFactor(Features{Hour: 8})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestLearnedModel_RegressorError(t *testing.T) {
	boom := errors.New("boom")
	model := &LearnedModel{Regressor: &stubRegressor{width: 8, err: boom}}

	_, err := model.ComputeFactor(Features{})

	assert.True(t, errors.Is(err, boom))
}

func TestLearnedModel_Importances(t *testing.T) {
	model := &LearnedModel{
		Regressor:    &stubRegressor{importances: []float64{0.5, 0.3, 0.2}},
		FeatureNames: []string{"distance", "base_duration", "hour"},
	}

	assert.Equal(t, map[string]float64{"distance": 0.5, "base_duration": 0.3, "hour": 0.2}, model.Importances())
}

func TestTripFeatures_FillsMissingWeather(t *testing.T) {
	trip := &entity.Trip{
		Distance:          5000,
		EstimatedDuration: 600,
		Hour:              9,
		DayOfWeek:         6,
		IsWeekend:         true,
		HadIncidents:      true,
	}

	features := TripFeatures(trip)

	assert.Equal(t, DefaultWeatherCondition, features.WeatherCondition)
	assert.Equal(t, DefaultTemperature, features.Temperature)
	assert.Equal(t, 1, features.IncidentCount)
	assert.Equal(t, []float64{5000, 600, 9, 6, 1, 0, 1, 25}, Vector(features, nil))
}

func TestFeatureNames(t *testing.T) {
	assert.Equal(t, []string{
		"distance", "base_duration", "hour", "day_of_week",
		"is_weekend", "is_holiday", "has_incidents", "temperature",
	}, FeatureNames(false))
	assert.Len(t, FeatureNames(true), 9)
	assert.Equal(t, "weather_encoded", FeatureNames(true)[7])
}

func TestLabelEncoder(t *testing.T) {
	encoder := FitLabelEncoder([]string{"rain", "clear", "rain", "fog", "clear"})

	assert.Equal(t, []string{"clear", "fog", "rain"}, encoder.Classes)

	idx, ok := encoder.Transform("rain")
	assert.True(t, ok)
	assert.Equal(t, 2.0, idx)

	idx, ok = encoder.Transform("snow")
	assert.False(t, ok)
	assert.Zero(t, idx)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	assert.Nil(t, registry.Active())

	model := &LearnedModel{TripsCount: 12}
	registry.Activate(model)

	assert.Same(t, model, registry.Active())
}

func TestMeanAbsoluteError(t *testing.T) {
	regressor := &stubRegressor{width: 1, value: 1.5}

	mae, err := MeanAbsoluteError(regressor, [][]float64{{1}, {2}}, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mae, 1e-12)

	_, err = MeanAbsoluteError(regressor, nil, nil)
	assert.Error(t, err)
}

func TestLearnedModel_RegressorPanicBecomesError(t *testing.T) {
	model := &LearnedModel{
		Regressor:      &stubRegressor{width: 9, panics: true},
		WeatherEncoder: FitLabelEncoder([]string{"clear"}),
		FeatureNames:   FeatureNames(true),
	}

	var (
		adjustment Adjustment
		err        error
	)
	require.NotPanics(t, func() {
		adjustment, err = model.ComputeFactor(Features{Distance: 1000, BaseDuration: 60, WeatherCondition: "clear", Temperature: 25})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "regressor panicked")
	assert.Zero(t, adjustment.Factor)
}
