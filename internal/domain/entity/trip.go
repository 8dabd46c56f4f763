package entity

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a completed journey with its predicted and observed durations.
// Trips are immutable once stored and feed model training.
type Trip struct {
	ID                uuid.UUID `json:"id"`
	Start             GeoPoint  `json:"start"`
	End               GeoPoint  `json:"end"`
	StartName         string    `json:"start_name,omitempty"`
	EndName           string    `json:"end_name,omitempty"`
	Distance          float64   `json:"distance"`           // meters
	EstimatedDuration float64   `json:"estimated_duration"` // seconds, from the routing engine
	ActualDuration    float64   `json:"actual_duration"`    // seconds, observed
	Hour              int       `json:"hour"`
	DayOfWeek         int       `json:"day_of_week"` // 0=Monday, 6=Sunday
	IsWeekend         bool      `json:"is_weekend"`
	IsHoliday         bool      `json:"is_holiday"`
	WeatherCondition  *string   `json:"weather_condition,omitempty"`
	Temperature       *float64  `json:"temperature,omitempty"`
	HadIncidents      bool      `json:"had_incidents"`
	IncidentTypes     []string  `json:"incident_types"`
	TrafficIntensity  float64   `json:"traffic_intensity"`
	CreatedAt         time.Time `json:"created_at"`
}

// DurationRatio is the observed slowdown relative to the engine estimate.
func (t *Trip) DurationRatio() float64 {
	if t.EstimatedDuration <= 0 {
		return 0
	}

	return t.ActualDuration / t.EstimatedDuration
}

// Weekday converts a time.Weekday to the Monday-first index used by trips and predictions.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekendDay reports whether a Monday-first day index is Saturday or Sunday.
func IsWeekendDay(dayOfWeek int) bool {
	return dayOfWeek >= 5
}
