// Package router wires handlers to URL paths.
package router

import (
	"routecast/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler    *handler.RouteHandler
	IncidentHandler *handler.IncidentHandler
	TripHandler     *handler.TripHandler
	WeatherHandler  *handler.WeatherHandler
	FavoriteHandler *handler.FavoriteHandler
	SettingsHandler *handler.SettingsHandler
	HealthHandler   *handler.HealthHandler
}

type router struct {
	RouterParams
}

// NewRouter builds the API router from every registered handler.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.HealthHandler.Health)

	apiV1 := e.Group("/api/v1")

	routes := apiV1.Group("/routes")
	{
		routes.POST("/calculate", r.RouteHandler.CalculateRoute)
		routes.POST("/alternatives", r.RouteHandler.AlternativeRoutes)
		routes.POST("/predict", r.RouteHandler.PredictDuration)
	}

	incidents := apiV1.Group("/incidents")
	{
		incidents.GET("", r.IncidentHandler.ListIncidents)
		incidents.POST("", r.IncidentHandler.ReportIncident)
		incidents.GET("/types", r.IncidentHandler.IncidentTypes)
		incidents.POST("/on-route", r.IncidentHandler.IncidentsOnRoute)
		incidents.POST("/:id/confirm", r.IncidentHandler.ConfirmIncident)
		incidents.POST("/:id/dismiss", r.IncidentHandler.DismissIncident)
	}

	trips := apiV1.Group("/trips")
	{
		trips.POST("", r.TripHandler.RecordTrip)
		trips.GET("", r.TripHandler.ListTrips)
		trips.GET("/count", r.TripHandler.CountTrips)
		trips.GET("/similar", r.TripHandler.SimilarTrips)
		trips.POST("/train", r.TripHandler.TrainModel)
		trips.GET("/model-status", r.TripHandler.ModelStatus)
		trips.POST("/model/reload", r.TripHandler.ReloadModel)
	}

	apiV1.GET("/weather", r.WeatherHandler.CurrentWeather)

	favorites := apiV1.Group("/favorites")
	{
		favorites.GET("", r.FavoriteHandler.ListFavorites)
		favorites.POST("", r.FavoriteHandler.SaveFavorite)
		favorites.DELETE("/:id", r.FavoriteHandler.DeleteFavorite)
		favorites.GET("/:id/qr", r.FavoriteHandler.FavoriteQR)
	}

	settings := apiV1.Group("/settings")
	{
		settings.GET("", r.SettingsHandler.GetSettings)
		settings.POST("", r.SettingsHandler.UpdateSettings)
	}
}
