// Package ml adapts the gradient boosting regressor to the prediction domain.
package ml

import (
	"encoding/json"
	"time"

	"routecast/internal/domain/prediction"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/infra/ml/gbr"
)

const artifactVersion = 1

var (
	// ErrUnsupportedArtifact is returned for payloads written by an unknown codec version.
	ErrUnsupportedArtifact = errors.New("unsupported model artifact")
	// ErrCorruptArtifact is returned when a payload decodes into an unusable model.
	ErrCorruptArtifact = errors.New("corrupt model artifact")
)

type artifact struct {
	Version        int                      `json:"version"`
	Regressor      *gbr.Model               `json:"regressor"`
	WeatherEncoder *prediction.LabelEncoder `json:"weather_encoder,omitempty"`
	FeatureNames   []string                 `json:"feature_names"`
	TrainedAt      time.Time                `json:"trained_at"`
	TripsCount     int                      `json:"trips_count"`
}

type jsonCodec struct{}

// NewJSONCodec returns the codec used for stored model artifacts.
func NewJSONCodec() service.ModelCodec {
	return &jsonCodec{}
}

// Encode implements service.ModelCodec.
func (c *jsonCodec) Encode(model *prediction.LearnedModel) ([]byte, error) {
	if model == nil {
		return nil, errors.Wrap(prediction.ErrModelUnfitted, "encode")
	}

	regressor, ok := model.Regressor.(*gbr.Model)
	if !ok {
		return nil, errors.Errorf("cannot encode regressor of type %T", model.Regressor)
	}

	payload, err := json.Marshal(artifact{
		Version:        artifactVersion,
		Regressor:      regressor,
		WeatherEncoder: model.WeatherEncoder,
		FeatureNames:   model.FeatureNames,
		TrainedAt:      model.TrainedAt,
		TripsCount:     model.TripsCount,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal model artifact")
	}

	return payload, nil
}

// Decode implements service.ModelCodec.
func (c *jsonCodec) Decode(payload []byte) (*prediction.LearnedModel, error) {
	var decoded artifact
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, errors.Wrap(ErrCorruptArtifact, err.Error())
	}

	if decoded.Version != artifactVersion {
		return nil, errors.Wrapf(ErrUnsupportedArtifact, "version %d", decoded.Version)
	}
	if decoded.Regressor == nil || len(decoded.Regressor.Trees) == 0 {
		return nil, errors.Wrap(ErrCorruptArtifact, "missing regressor")
	}
	if err := decoded.Regressor.Validate(); err != nil {
		return nil, errors.Wrap(ErrCorruptArtifact, err.Error())
	}
	if decoded.Regressor.NFeatures != len(decoded.FeatureNames) {
		return nil, errors.Wrapf(ErrCorruptArtifact, "regressor expects %d features, artifact names %d",
			decoded.Regressor.NFeatures, len(decoded.FeatureNames))
	}

	return &prediction.LearnedModel{
		Regressor:      decoded.Regressor,
		WeatherEncoder: decoded.WeatherEncoder,
		FeatureNames:   decoded.FeatureNames,
		TrainedAt:      decoded.TrainedAt,
		TripsCount:     decoded.TripsCount,
	}, nil
}
