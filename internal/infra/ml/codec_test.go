package ml

import (
	"context"
	"fmt"
	"testing"
	"time"

	"routecast/config"
	"routecast/internal/domain/prediction"
	"routecast/internal/errors"
	"routecast/internal/infra/ml/gbr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedModel(t *testing.T) *prediction.LearnedModel {
	t.Helper()

	x := make([][]float64, 0, 12)
	y := make([]float64, 0, 12)
	for i := range 12 {
		x = append(x, []float64{float64(i * 1000), 600, float64(i + 6), float64(i % 7), 0, 0, 0, 1, 27})
		y = append(y, 1+float64(i%3)*0.1)
	}

	fitter := NewGBRFitter(&config.Config{Training: &config.TrainingConfig{Estimators: 10, MaxDepth: 3, LearningRate: 0.1, Seed: 42}})
	regressor, err := fitter.Fit(context.Background(), x, y)
	require.NoError(t, err)

	return &prediction.LearnedModel{
		Regressor:      regressor,
		WeatherEncoder: prediction.FitLabelEncoder([]string{"clear", "rain"}),
		FeatureNames:   prediction.FeatureNames(true),
		TrainedAt:      time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
		TripsCount:     12,
	}
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	model := fittedModel(t)
	codec := NewJSONCodec()

	payload, err := codec.Encode(model)
	require.NoError(t, err)

	decoded, err := codec.Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, model.FeatureNames, decoded.FeatureNames)
	assert.Equal(t, model.WeatherEncoder.Classes, decoded.WeatherEncoder.Classes)
	assert.True(t, model.TrainedAt.Equal(decoded.TrainedAt))
	assert.Equal(t, 12, decoded.TripsCount)

	features := prediction.Features{Distance: 3000, BaseDuration: 600, Hour: 8, WeatherCondition: "rain", Temperature: 27}
	want, err := model.ComputeFactor(features)
	require.NoError(t, err)
	got, err := decoded.ComputeFactor(features)
	require.NoError(t, err)
	assert.Equal(t, want.Factor, got.Factor)
}

func TestJSONCodec_DecodeRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected error
	}{
		{name: "not json", payload: "{", expected: ErrCorruptArtifact},
		{name: "unknown version", payload: `{"version":9}`, expected: ErrUnsupportedArtifact},
		{name: "missing regressor", payload: `{"version":1,"feature_names":["distance"]}`, expected: ErrCorruptArtifact},
		{
			name:     "width mismatch",
			payload:  `{"version":1,"regressor":{"n_features":3,"trees":[{"nodes":[{"left":-1,"right":-1,"value":1}]}]},"feature_names":["distance"]}`,
			expected: ErrCorruptArtifact,
		},
	}

	codec := NewJSONCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode([]byte(tt.payload))

			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestJSONCodec_EncodeRejectsForeignRegressor(t *testing.T) {
	codec := NewJSONCodec()

	_, err := codec.Encode(nil)
	assert.True(t, errors.Is(err, prediction.ErrModelUnfitted))

	_, err = codec.Encode(&prediction.LearnedModel{Regressor: nil})
	assert.Error(t, err)
}

func TestNewGBRFitter_UsesDefaultsWithoutTrainingSection(t *testing.T) {
	fitter := NewGBRFitter(&config.Config{}).(*gbrFitter)

	assert.Equal(t, gbr.DefaultParams(), fitter.params)
}

func TestJSONCodec_DecodeRejectsMalformedTrees(t *testing.T) {
	const envelope = `{"version":1,"regressor":{"n_features":1,"init":1,"learning_rate":0.1,"trees":[%s]},"feature_names":["distance"]}`

	tests := []struct {
		name string
		tree string
	}{
		{name: "empty tree", tree: `{"nodes":[]}`},
		{name: "feature out of range", tree: `{"nodes":[{"feature":42,"left":1,"right":2},{"left":-1,"right":-1,"value":1},{"left":-1,"right":-1,"value":1}]}`},
		{name: "negative feature", tree: `{"nodes":[{"feature":-2,"left":1,"right":2},{"left":-1,"right":-1,"value":1},{"left":-1,"right":-1,"value":1}]}`},
		{name: "child out of range", tree: `{"nodes":[{"feature":0,"left":7,"right":7}]}`},
		{name: "child points back", tree: `{"nodes":[{"feature":0,"left":1,"right":2},{"feature":0,"left":0,"right":2},{"left":-1,"right":-1,"value":1}]}`},
		{name: "self loop", tree: `{"nodes":[{"feature":0,"left":0,"right":0}]}`},
	}

	codec := NewJSONCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model *prediction.LearnedModel
			var err error

			require.NotPanics(t, func() {
				model, err = codec.Decode(fmt.Appendf(nil, envelope, tt.tree))
			})

			assert.Nil(t, model)
			assert.True(t, errors.Is(err, ErrCorruptArtifact), "got %v", err)
		})
	}
}

func TestJSONCodec_DecodeAcceptsWellFormedTree(t *testing.T) {
	payload := `{"version":1,"regressor":{"n_features":1,"init":1,"learning_rate":0.5,"trees":[` +
		`{"nodes":[{"feature":0,"threshold":10,"left":1,"right":2},{"left":-1,"right":-1,"value":0.2},{"left":-1,"right":-1,"value":-0.2}]}` +
		`]},"feature_names":["distance"]}`

	model, err := NewJSONCodec().Decode([]byte(payload))
	require.NoError(t, err)

	short, err := model.Regressor.Predict([]float64{5})
	require.NoError(t, err)
	long, err := model.Regressor.Predict([]float64{50})
	require.NoError(t, err)

	assert.InDelta(t, 1.1, short, 1e-12)
	assert.InDelta(t, 0.9, long, 1e-12)
}
