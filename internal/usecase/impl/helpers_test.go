package impl

import (
	"io"
	"log/slog"
	"time"

	"routecast/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Incidents: &config.IncidentsConfig{
			DefaultExpiryMinutes:    60,
			ConfirmExtensionMinutes: 30,
			RouteThresholdKm:        0.3,
			NearbyRadiusKm:          10,
		},
		Model: &config.ModelConfig{ArtifactName: "duration_model"},
		Training: &config.TrainingConfig{
			MinTrips:     10,
			MaxTrips:     1000,
			RetrainEvery: 5,
			Estimators:   100,
			MaxDepth:     5,
			LearningRate: 0.1,
			Seed:         42,
		},
		Weather: &config.WeatherConfig{
			RequestTimeout: time.Second,
			CacheTTL:       10 * time.Minute,
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// constRegressor predicts the same value for every row of the expected width.
type constRegressor struct {
	width int
	value float64
}

func (r constRegressor) NumFeatures() int { return r.width }

func (r constRegressor) Predict([]float64) (float64, error) { return r.value, nil }

func (r constRegressor) FeatureImportances() []float64 { return make([]float64, r.width) }

// recordingRegressor keeps the last row it was asked to predict.
type recordingRegressor struct {
	constRegressor
	last []float64
}

func (r *recordingRegressor) Predict(x []float64) (float64, error) {
	r.last = x

	return r.value, nil
}
