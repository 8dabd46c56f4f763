package prediction

import (
	"routecast/internal/domain/entity"
)

// Feature column names, in vector order.
const (
	FeatureDistance       = "distance"
	FeatureBaseDuration   = "base_duration"
	FeatureHour           = "hour"
	FeatureDayOfWeek      = "day_of_week"
	FeatureIsWeekend      = "is_weekend"
	FeatureIsHoliday      = "is_holiday"
	FeatureHasIncidents   = "has_incidents"
	FeatureWeatherEncoded = "weather_encoded"
	FeatureTemperature    = "temperature"
)

const (
	// DefaultWeatherCondition fills trips recorded without weather.
	DefaultWeatherCondition = "clear"
	// DefaultTemperature fills trips recorded without temperature.
	DefaultTemperature = 25.0
)

// FeatureNames lists the vector columns. The weather column exists only when an encoder was fitted.
func FeatureNames(withWeather bool) []string {
	names := []string{
		FeatureDistance,
		FeatureBaseDuration,
		FeatureHour,
		FeatureDayOfWeek,
		FeatureIsWeekend,
		FeatureIsHoliday,
		FeatureHasIncidents,
	}
	if withWeather {
		names = append(names, FeatureWeatherEncoded)
	}

	return append(names, FeatureTemperature)
}

// Vector builds the model input for a prediction request.
// An unseen weather category encodes to 0.
func Vector(features Features, encoder *LabelEncoder) []float64 {
	vector := []float64{
		features.Distance,
		features.BaseDuration,
		float64(features.Hour),
		float64(features.DayOfWeek),
		boolToFloat(features.IsWeekend),
		boolToFloat(features.IsHoliday),
		boolToFloat(features.IncidentCount > 0),
	}
	if encoder != nil {
		encoded, _ := encoder.Transform(features.WeatherCondition)
		vector = append(vector, encoded)
	}

	return append(vector, features.Temperature)
}

// TripFeatures converts a stored trip into the features it was observed under.
func TripFeatures(trip *entity.Trip) Features {
	weather := DefaultWeatherCondition
	if trip.WeatherCondition != nil {
		weather = *trip.WeatherCondition
	}

	temperature := DefaultTemperature
	if trip.Temperature != nil {
		temperature = *trip.Temperature
	}

	incidentCount := 0
	if trip.HadIncidents {
		incidentCount = 1
	}

	return Features{
		Distance:         trip.Distance,
		BaseDuration:     trip.EstimatedDuration,
		Hour:             trip.Hour,
		DayOfWeek:        trip.DayOfWeek,
		IsWeekend:        trip.IsWeekend,
		IsHoliday:        trip.IsHoliday,
		WeatherCondition: weather,
		Temperature:      temperature,
		IncidentCount:    incidentCount,
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
