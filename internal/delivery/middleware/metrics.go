package middleware

import (
	"net/http"
	"strconv"
	"time"

	"routecast/internal/errors"
	"routecast/internal/metrics"

	"github.com/labstack/echo/v4"
)

// RecordMetrics observes request latency by method, route template and status.
// Unmatched paths share one route label to bound cardinality.
func RecordMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else if !c.Response().Committed {
				status = http.StatusInternalServerError
			}
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		return err
	}
}
