// Package osrm calls the OSRM route service.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"routecast/config"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/resilience"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const providerName = "osrm"

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64           `json:"distance"`
		Duration float64           `json:"duration"`
		Geometry *geojson.Geometry `json:"geometry"`
	} `json:"routes"`
}

// Client implements service.RoutingProvider against an OSRM server.
type Client struct {
	baseURL    string
	profile    string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	logger     *slog.Logger
}

// New creates a client from the routing config.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	routing := cfg.Routing

	return &Client{
		baseURL:    strings.TrimRight(routing.OSRM.BaseURL, "/"),
		profile:    routing.OSRM.Profile,
		timeout:    routing.RequestTimeout,
		httpClient: &http.Client{},
		breaker:    resilience.NewObservedBreaker(providerName, routing.Breaker, countsAgainstBreaker, logger),
		logger:     logger,
	}
}

// countsAgainstBreaker ignores answers that prove the server is healthy.
func countsAgainstBreaker(err error) bool {
	return err != nil && !errors.Is(err, service.ErrNoRoute) && !errors.Is(err, context.Canceled)
}

// Name identifies the engine.
func (c *Client) Name() string {
	return providerName
}

// Routes asks for the main route plus alternatives with full GeoJSON geometry.
func (c *Client) Routes(ctx context.Context, start, end entity.GeoPoint) ([]*entity.RoutePolyline, error) {
	var routes []*entity.RoutePolyline

	err := c.breaker.Execute(func() error {
		var err error
		routes, err = c.fetch(ctx, start, end)

		return err
	})
	if err != nil {
		return nil, err
	}

	return routes, nil
}

func (c *Client) fetch(ctx context.Context, start, end entity.GeoPoint) ([]*entity.RoutePolyline, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.routeURL(start, end), http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "osrm request")
	}
	defer resp.Body.Close()

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrapf(err, "decode osrm response (status %d)", resp.StatusCode)
	}

	switch {
	case body.Code == "NoRoute" || body.Code == "NoSegment":
		return nil, errors.Wrap(service.ErrNoRoute, body.Message)
	case resp.StatusCode != http.StatusOK || body.Code != "Ok":
		return nil, errors.Errorf("osrm answered %d %s: %s", resp.StatusCode, body.Code, body.Message)
	case len(body.Routes) == 0:
		return nil, service.ErrNoRoute
	}

	routes := make([]*entity.RoutePolyline, 0, len(body.Routes))
	for i, r := range body.Routes {
		if r.Geometry == nil {
			return nil, errors.Errorf("osrm route %d has no geometry", i)
		}
		path, ok := r.Geometry.Geometry().(orb.LineString)
		if !ok || len(path) < 2 {
			return nil, errors.Errorf("osrm route %d geometry is not a line", i)
		}

		routes = append(routes, &entity.RoutePolyline{
			Path:         path,
			Distance:     r.Distance,
			BaseDuration: r.Duration,
		})
	}

	c.logger.DebugContext(ctx, "OSRM routes fetched", slog.Int("count", len(routes)))

	return routes, nil
}

func (c *Client) routeURL(start, end entity.GeoPoint) string {
	query := url.Values{
		"overview":     {"full"},
		"geometries":   {"geojson"},
		"steps":        {"true"},
		"alternatives": {"true"},
	}

	return fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?%s",
		c.baseURL, c.profile, start.Lng, start.Lat, end.Lng, end.Lat, query.Encode())
}
