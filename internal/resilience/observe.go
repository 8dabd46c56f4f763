package resilience

import (
	"log/slog"

	"routecast/config"
	"routecast/internal/metrics"
)

// NewObservedBreaker builds a breaker from config that logs transitions and exports its state.
func NewObservedBreaker(name string, cfg config.BreakerConfig, isFailure func(error) bool, logger *slog.Logger) *CircuitBreaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(StateClosed))

	return NewCircuitBreaker(CircuitBreakerConfig{
		Name:         name,
		MaxFailures:  cfg.MaxFailures,
		ResetTimeout: cfg.ResetTimeout,
		IsFailure:    isFailure,
		OnStateChange: func(name string, from, to State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("Circuit breaker state changed",
				slog.String("upstream", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}
