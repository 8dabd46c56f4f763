package gbr

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"routecast/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepDataset() ([][]float64, []float64) {
	x := make([][]float64, 0, 40)
	y := make([]float64, 0, 40)
	for i := range 40 {
		hour := float64(i % 24)
		x = append(x, []float64{hour, float64(i % 7)})
		if hour >= 7 && hour <= 9 {
			y = append(y, 1.4)
		} else {
			y = append(y, 1.0)
		}
	}

	return x, y
}

func TestFit_ConstantTarget(t *testing.T) {
	x := make([][]float64, 10)
	y := make([]float64, 10)
	for i := range x {
		x[i] = []float64{float64(i * 1000), float64(i), 25}
		y[i] = 1.2
	}

	model, err := Fit(context.Background(), x, y, DefaultParams())
	require.NoError(t, err)

	predicted, err := model.PredictBatch(x)
	require.NoError(t, err)

	assert.InDelta(t, 0, MeanAbsoluteError(predicted, y), 1e-9)
	assert.Len(t, model.Trees, 100)
	assert.Equal(t, []float64{0, 0, 0}, model.FeatureImportances())
}

func TestFit_LearnsStepFunction(t *testing.T) {
	x, y := stepDataset()

	model, err := Fit(context.Background(), x, y, DefaultParams())
	require.NoError(t, err)

	rush, err := model.Predict([]float64{8, 2})
	require.NoError(t, err)
	night, err := model.Predict([]float64{2, 2})
	require.NoError(t, err)

	assert.InDelta(t, 1.4, rush, 0.01)
	assert.InDelta(t, 1.0, night, 0.01)

	importances := model.FeatureImportances()
	require.Len(t, importances, 2)
	assert.InDelta(t, 1.0, importances[0]+importances[1], 1e-9)
	assert.Greater(t, importances[0], importances[1])
}

func TestFit_Deterministic(t *testing.T) {
	x, y := stepDataset()

	first, err := Fit(context.Background(), x, y, DefaultParams())
	require.NoError(t, err)
	second, err := Fit(context.Background(), x, y, DefaultParams())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestFit_RespectsMaxDepth(t *testing.T) {
	x, y := stepDataset()
	params := DefaultParams()
	params.NEstimators = 3
	params.MaxDepth = 1

	model, err := Fit(context.Background(), x, y, params)
	require.NoError(t, err)

	for _, tree := range model.Trees {
		assert.LessOrEqual(t, len(tree.Nodes), 3)
	}
}

func TestFit_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		x        [][]float64
		y        []float64
		expected error
	}{
		{name: "empty", expected: ErrEmptyDataset},
		{name: "length mismatch", x: [][]float64{{1}, {2}}, y: []float64{1}, expected: ErrShapeMismatch},
		{name: "ragged rows", x: [][]float64{{1, 2}, {2}}, y: []float64{1, 2}, expected: ErrShapeMismatch},
		{name: "no features", x: [][]float64{{}, {}}, y: []float64{1, 2}, expected: ErrShapeMismatch},
		{name: "nan feature", x: [][]float64{{math.NaN()}}, y: []float64{1}, expected: ErrNonFinite},
		{name: "inf target", x: [][]float64{{1}}, y: []float64{math.Inf(1)}, expected: ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(context.Background(), tt.x, tt.y, DefaultParams())

			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestFit_Cancelled(t *testing.T) {
	x, y := stepDataset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fit(ctx, x, y, DefaultParams())

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestModel_PredictShapeMismatch(t *testing.T) {
	model := &Model{NFeatures: 3}

	_, err := model.Predict([]float64{1, 2})

	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestModel_JSONRoundTripPredictsSame(t *testing.T) {
	x, y := stepDataset()
	model, err := Fit(context.Background(), x, y, DefaultParams())
	require.NoError(t, err)

	payload, err := json.Marshal(model)
	require.NoError(t, err)

	var decoded Model
	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, row := range x {
		want, _ := model.Predict(row)
		got, err := decoded.Predict(row)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestModel_ValidateFittedModel(t *testing.T) {
	x, y := stepDataset()
	model, err := Fit(context.Background(), x, y, DefaultParams())
	require.NoError(t, err)

	assert.NoError(t, model.Validate())
}

func TestModel_ValidateRejectsMalformed(t *testing.T) {
	leaf := node{Left: leafNode, Right: leafNode, Value: 0.1}

	tests := []struct {
		name     string
		model    *Model
		expected error
	}{
		{
			name:     "no features",
			model:    &Model{Trees: []*Tree{{Nodes: []node{leaf}}}},
			expected: ErrMalformedTree,
		},
		{
			name:     "no trees",
			model:    &Model{NFeatures: 2},
			expected: ErrMalformedTree,
		},
		{
			name:     "nil tree",
			model:    &Model{NFeatures: 2, Trees: []*Tree{nil}},
			expected: ErrMalformedTree,
		},
		{
			name:     "non-finite init",
			model:    &Model{NFeatures: 2, Init: math.NaN(), Trees: []*Tree{{Nodes: []node{leaf}}}},
			expected: ErrNonFinite,
		},
		{
			name: "split feature out of range",
			model: &Model{NFeatures: 2, Trees: []*Tree{{Nodes: []node{
				{Feature: 5, Left: 1, Right: 2}, leaf, leaf,
			}}}},
			expected: ErrMalformedTree,
		},
		{
			name: "child past end",
			model: &Model{NFeatures: 2, Trees: []*Tree{{Nodes: []node{
				{Feature: 0, Left: 1, Right: 9}, leaf,
			}}}},
			expected: ErrMalformedTree,
		},
		{
			name: "cycle",
			model: &Model{NFeatures: 2, Trees: []*Tree{{Nodes: []node{
				{Feature: 0, Left: 1, Right: 2}, {Feature: 1, Left: 0, Right: 2}, leaf,
			}}}},
			expected: ErrMalformedTree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()

			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestMeanAbsoluteError(t *testing.T) {
	assert.InDelta(t, 0.5, MeanAbsoluteError([]float64{1, 2}, []float64{1.5, 1.5}), 1e-12)
	assert.Zero(t, MeanAbsoluteError(nil, nil))
	assert.Zero(t, MeanAbsoluteError([]float64{1}, []float64{1, 2}))
}
