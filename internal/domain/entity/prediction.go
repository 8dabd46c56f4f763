package entity

// PredictionResult is a base duration adjusted by contextual factors.
// PredictedDuration always equals BaseDuration * AdjustmentFactor.
type PredictionResult struct {
	PredictedDuration float64            `json:"predicted_duration"`
	BaseDuration      float64            `json:"base_duration"`
	AdjustmentFactor  float64            `json:"adjustment_factor"`
	Confidence        float64            `json:"confidence"`
	Factors           map[string]float64 `json:"factors_applied"`
}

// ModelStatus reports which adjustment path predictions use.
type ModelStatus struct {
	IsTrained        bool   `json:"is_trained"`
	TripsCount       int64  `json:"trips_count"`
	ReadyForTraining bool   `json:"ready_for_training"`
	UsingHeuristics  bool   `json:"using_heuristics"`
	Message          string `json:"message"`
	TrainedAt        string `json:"trained_at,omitempty"`
}

// TrainingReport summarizes one training run.
type TrainingReport struct {
	Success           bool               `json:"success"`
	Message           string             `json:"message"`
	TripsCount        int                `json:"trips_count"`
	MAE               *float64           `json:"mae,omitempty"`
	FeatureImportance map[string]float64 `json:"feature_importance,omitempty"`
}
