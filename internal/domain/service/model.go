package service

import (
	"context"

	"routecast/internal/domain/prediction"
)

// RegressorFitter fits a regressor on a feature matrix and target vector.
type RegressorFitter interface {
	Fit(ctx context.Context, x [][]float64, y []float64) (prediction.Regressor, error)
}

// ModelCodec serializes learned models into artifact payloads and back.
type ModelCodec interface {
	Encode(model *prediction.LearnedModel) ([]byte, error)
	Decode(payload []byte) (*prediction.LearnedModel, error)
}
