package ml

import (
	"context"

	"routecast/config"
	"routecast/internal/domain/prediction"
	"routecast/internal/domain/service"
	"routecast/internal/infra/ml/gbr"
)

type gbrFitter struct {
	params gbr.Params
}

// NewGBRFitter builds a fitter from the training section of the config.
func NewGBRFitter(cfg *config.Config) service.RegressorFitter {
	params := gbr.DefaultParams()
	if training := cfg.Training; training != nil {
		params.NEstimators = training.Estimators
		params.MaxDepth = training.MaxDepth
		params.LearningRate = training.LearningRate
		params.Seed = training.Seed
	}

	return &gbrFitter{params: params}
}

// Fit implements service.RegressorFitter.
func (f *gbrFitter) Fit(ctx context.Context, x [][]float64, y []float64) (prediction.Regressor, error) {
	model, err := gbr.Fit(ctx, x, y, f.params)
	if err != nil {
		return nil, err
	}

	return model, nil
}
