// Package weather reads current conditions from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"routecast/config"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/resilience"
)

const upstreamName = "openweathermap"

// conditions maps the OpenWeatherMap "main" group onto our buckets. Unlisted groups read as clear.
var conditions = map[string]entity.WeatherCondition{
	"Clear":        entity.WeatherClear,
	"Clouds":       entity.WeatherClouds,
	"Rain":         entity.WeatherRain,
	"Drizzle":      entity.WeatherDrizzle,
	"Thunderstorm": entity.WeatherThunderstorm,
	"Snow":         entity.WeatherSnow,
	"Mist":         entity.WeatherMist,
	"Fog":          entity.WeatherFog,
	"Haze":         entity.WeatherMist,
	"Smoke":        entity.WeatherMist,
}

type currentResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Client implements service.WeatherProvider.
type Client struct {
	apiKey     string
	baseURL    string
	lang       string
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
}

// New creates a client from the weather config.
func New(cfg *config.Config, logger *slog.Logger) service.WeatherProvider {
	weather := cfg.Weather

	return &Client{
		apiKey:     weather.APIKey,
		baseURL:    weather.BaseURL,
		lang:       weather.Lang,
		httpClient: &http.Client{},
		breaker: resilience.NewObservedBreaker(upstreamName, weather.Breaker, func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		}, logger),
	}
}

// CurrentWeather fetches conditions at point. Callers bound the call with ctx.
func (c *Client) CurrentWeather(ctx context.Context, point entity.GeoPoint) (*entity.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return nil, service.ErrWeatherUnconfigured
	}

	var snapshot *entity.WeatherSnapshot
	err := c.breaker.Execute(func() error {
		var err error
		snapshot, err = c.fetch(ctx, point)

		return err
	})

	return snapshot, err
}

func (c *Client) fetch(ctx context.Context, point entity.GeoPoint) (*entity.WeatherSnapshot, error) {
	query := url.Values{
		"lat":   {strconv.FormatFloat(point.Lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(point.Lng, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	if c.lang != "" {
		query.Set("lang", c.lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "openweathermap request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("openweathermap answered %d", resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode openweathermap response")
	}

	return toSnapshot(&body), nil
}

func toSnapshot(body *currentResponse) *entity.WeatherSnapshot {
	snapshot := &entity.WeatherSnapshot{
		Condition:   entity.WeatherClear,
		Temperature: body.Main.Temp,
		Humidity:    body.Main.Humidity,
		Visibility:  body.Visibility,
		WindSpeed:   body.Wind.Speed,
	}

	if len(body.Weather) > 0 {
		if condition, ok := conditions[body.Weather[0].Main]; ok {
			snapshot.Condition = condition
		}
		snapshot.Description = body.Weather[0].Description
	}

	return snapshot
}
