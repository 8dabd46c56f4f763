// Package gbr implements a least-squares gradient boosted regression tree ensemble.
package gbr

import (
	"context"
	"math"
	"math/rand/v2"

	"routecast/internal/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyDataset is returned when fitting on no rows.
	ErrEmptyDataset = errors.New("gbr: empty dataset")
	// ErrShapeMismatch is returned when rows and targets disagree in size or width.
	ErrShapeMismatch = errors.New("gbr: shape mismatch")
	// ErrNonFinite is returned when inputs contain NaN or Inf.
	ErrNonFinite = errors.New("gbr: non-finite value")
	// ErrMalformedTree is returned when a deserialized tree cannot be evaluated safely.
	ErrMalformedTree = errors.New("gbr: malformed tree")
)

// Params controls the boosting procedure.
type Params struct {
	NEstimators     int
	MaxDepth        int
	LearningRate    float64
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            uint64
}

// DefaultParams returns 100 depth-5 trees at learning rate 0.1 with seed 42.
func DefaultParams() Params {
	return Params{
		NEstimators:     100,
		MaxDepth:        5,
		LearningRate:    0.1,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Seed:            42,
	}
}

func (p Params) withDefaults() Params {
	defaults := DefaultParams()
	if p.NEstimators <= 0 {
		p.NEstimators = defaults.NEstimators
	}
	if p.MaxDepth <= 0 {
		p.MaxDepth = defaults.MaxDepth
	}
	if p.LearningRate <= 0 {
		p.LearningRate = defaults.LearningRate
	}
	if p.MinSamplesSplit < 2 {
		p.MinSamplesSplit = defaults.MinSamplesSplit
	}
	if p.MinSamplesLeaf < 1 {
		p.MinSamplesLeaf = defaults.MinSamplesLeaf
	}

	return p
}

// Model is a fitted ensemble. It serializes to JSON as-is.
type Model struct {
	NFeatures    int       `json:"n_features"`
	Init         float64   `json:"init"`
	LearningRate float64   `json:"learning_rate"`
	Trees        []*Tree   `json:"trees"`
	Importances  []float64 `json:"importances"`
}

// Fit boosts params.NEstimators trees on the squared-error gradient.
func Fit(ctx context.Context, x [][]float64, y []float64, params Params) (*Model, error) {
	if err := validate(x, y); err != nil {
		return nil, err
	}

	params = params.withDefaults()
	nSamples, nFeatures := len(x), len(x[0])
	rng := rand.New(rand.NewPCG(params.Seed, params.Seed))

	model := &Model{
		NFeatures:    nFeatures,
		Init:         stat.Mean(y, nil),
		LearningRate: params.LearningRate,
		Trees:        make([]*Tree, 0, params.NEstimators),
	}

	current := make([]float64, nSamples)
	for i := range current {
		current[i] = model.Init
	}

	samples := make([]int, nSamples)
	for i := range samples {
		samples[i] = i
	}

	importances := make([]float64, nFeatures)
	residuals := make([]float64, nSamples)
	stagePredictions := make([]float64, nSamples)

	for range params.NEstimators {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		floats.SubTo(residuals, y, current)

		tree, treeImportances := newTreeBuilder(x, residuals, params, rng).build(samples)
		model.Trees = append(model.Trees, tree)

		if total := floats.Sum(treeImportances); total > 0 {
			floats.Scale(1/total, treeImportances)
			floats.Add(importances, treeImportances)
		}

		for i, row := range x {
			stagePredictions[i] = tree.predict(row)
		}
		floats.AddScaled(current, params.LearningRate, stagePredictions)
	}

	if total := floats.Sum(importances); total > 0 {
		floats.Scale(1/total, importances)
	}
	model.Importances = importances

	return model, nil
}

// Validate checks a deserialized model before it is used for prediction.
func (m *Model) Validate() error {
	if m.NFeatures <= 0 {
		return errors.Wrapf(ErrMalformedTree, "model has %d features", m.NFeatures)
	}
	if len(m.Trees) == 0 {
		return errors.Wrap(ErrMalformedTree, "model has no trees")
	}
	if math.IsNaN(m.Init) || math.IsInf(m.Init, 0) || math.IsNaN(m.LearningRate) || math.IsInf(m.LearningRate, 0) {
		return errors.Wrap(ErrNonFinite, "init or learning rate")
	}

	for i, tree := range m.Trees {
		if err := tree.validate(m.NFeatures); err != nil {
			return errors.Wrapf(err, "tree %d", i)
		}
	}

	return nil
}

// NumFeatures returns the fitted vector width.
func (m *Model) NumFeatures() int {
	return m.NFeatures
}

// Predict evaluates the ensemble for one row.
func (m *Model) Predict(x []float64) (float64, error) {
	if len(x) != m.NFeatures {
		return 0, errors.Wrapf(ErrShapeMismatch, "got %d features, want %d", len(x), m.NFeatures)
	}

	out := m.Init
	for _, tree := range m.Trees {
		out += m.LearningRate * tree.predict(x)
	}

	return out, nil
}

// PredictBatch evaluates the ensemble for every row.
func (m *Model) PredictBatch(x [][]float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, row := range x {
		value, err := m.Predict(row)
		if err != nil {
			return nil, err
		}
		out[i] = value
	}

	return out, nil
}

// FeatureImportances returns normalized impurity-based importances.
func (m *Model) FeatureImportances() []float64 {
	return m.Importances
}

// MeanAbsoluteError compares predictions against targets.
func MeanAbsoluteError(predicted, actual []float64) float64 {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return 0
	}

	diffs := make([]float64, len(predicted))
	floats.SubTo(diffs, predicted, actual)
	for i, d := range diffs {
		diffs[i] = math.Abs(d)
	}

	return stat.Mean(diffs, nil)
}

func validate(x [][]float64, y []float64) error {
	if len(x) == 0 {
		return ErrEmptyDataset
	}
	if len(x) != len(y) {
		return errors.Wrapf(ErrShapeMismatch, "%d rows, %d targets", len(x), len(y))
	}

	width := len(x[0])
	if width == 0 {
		return errors.Wrap(ErrShapeMismatch, "rows have no features")
	}

	for i, row := range x {
		if len(row) != width {
			return errors.Wrapf(ErrShapeMismatch, "row %d has %d features, want %d", i, len(row), width)
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Wrapf(ErrNonFinite, "row %d", i)
			}
		}
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return errors.Wrapf(ErrNonFinite, "target %d", i)
		}
	}

	return nil
}
