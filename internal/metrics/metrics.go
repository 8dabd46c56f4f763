// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "routecast"

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by route and status.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "route", "status"})

	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Predictions served, by adjustment path.",
	}, []string{"kind"})

	PredictionFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prediction_fallbacks_total",
		Help:      "Learned-model failures answered by the heuristic.",
	})

	TrainingRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "training_runs_total",
		Help:      "Training runs by outcome.",
	}, []string{"outcome"})

	TrainingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "training_duration_seconds",
		Help:      "Wall time of successful training runs.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	ModelTrips = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_trips",
		Help:      "Trips used to fit the active learned model; 0 while on heuristics.",
	})

	ModelMAE = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_mae",
		Help:      "In-sample mean absolute error of the active learned model.",
	})

	IncidentEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incident_events_total",
		Help:      "Incident reports, confirmations and dismissals.",
	}, []string{"action"})

	WeatherLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_lookups_total",
		Help:      "Weather lookups by source: cache, provider or fallback.",
	}, []string{"source"})

	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_state",
		Help:      "Breaker position per upstream: 0 closed, 1 open, 2 half-open.",
	}, []string{"upstream"})
)

// Outcome labels for TrainingRuns.
const (
	OutcomeSuccess      = "success"
	OutcomeInsufficient = "insufficient"
	OutcomeFailed       = "failed"
)

// Source labels for WeatherLookups.
const (
	SourceCache    = "cache"
	SourceProvider = "provider"
	SourceFallback = "fallback"
)
