package prediction

const (
	contributionHour      = "hour"
	contributionWeather   = "weather"
	contributionIncidents = "incidents"

	holidayHourFactor     = 0.9
	weekendDamping        = 0.5
	maxIncidentFactor     = 2.0
	defaultSeverityFactor = 1.05
)

// hourFactors encodes rush-hour multipliers by local hour.
var hourFactors = map[int]float64{
	0: 0.85, 1: 0.8, 2: 0.8, 3: 0.8, 4: 0.85, 5: 0.9,
	6: 1.1, 7: 1.3, 8: 1.4, 9: 1.25, 10: 1.1, 11: 1.05,
	12: 1.1, 13: 1.05, 14: 1.0, 15: 1.0, 16: 1.1,
	17: 1.35, 18: 1.4, 19: 1.3, 20: 1.15, 21: 1.05,
	22: 0.95, 23: 0.9,
}

var weatherFactors = map[string]float64{
	"clear":        1.0,
	"clouds":       1.0,
	"drizzle":      1.1,
	"rain":         1.25,
	"thunderstorm": 1.4,
	"snow":         1.5,
	"mist":         1.15,
	"fog":          1.3,
}

var severityFactors = map[string]float64{
	"low":      1.05,
	"medium":   1.15,
	"high":     1.3,
	"critical": 1.5,
}

// HeuristicModel is the table-driven fallback model.
type HeuristicModel struct{}

// NewHeuristicModel returns the heuristic model.
func NewHeuristicModel() HeuristicModel {
	return HeuristicModel{}
}

// Kind implements AdjustmentModel.
func (HeuristicModel) Kind() Kind {
	return KindHeuristic
}

// ComputeFactor implements AdjustmentModel. It never fails.
func (HeuristicModel) ComputeFactor(features Features) (Adjustment, error) {
	contributions := make(map[string]float64, 3)

	hour := HourFactor(features.Hour, features.IsWeekend, features.IsHoliday)
	contributions[contributionHour] = hour
	total := hour

	weather := WeatherFactor(features.WeatherCondition)
	contributions[contributionWeather] = weather
	total *= weather

	if features.IncidentCount > 0 {
		incidents := IncidentFactor(features.IncidentSeverities)
		contributions[contributionIncidents] = incidents
		total *= incidents
	}

	return Adjustment{
		Factor:        total,
		Confidence:    HeuristicConfidence,
		Contributions: contributions,
	}, nil
}

// HourFactor returns the time-of-day multiplier.
// Weekends halve the deviation from 1.0; holidays override both.
func HourFactor(hour int, isWeekend, isHoliday bool) float64 {
	factor, ok := hourFactors[hour]
	if !ok {
		factor = 1.0
	}

	if isWeekend {
		factor = 1.0 + (factor-1.0)*weekendDamping
	}

	if isHoliday {
		factor = holidayHourFactor
	}

	return factor
}

// WeatherFactor returns the multiplier for a weather condition; unknown conditions are neutral.
func WeatherFactor(condition string) float64 {
	if factor, ok := weatherFactors[condition]; ok {
		return factor
	}

	return 1.0
}

// IncidentFactor multiplies per-severity weights and caps the product at 2.0.
func IncidentFactor(severities []string) float64 {
	factor := 1.0
	for _, severity := range severities {
		weight, ok := severityFactors[severity]
		if !ok {
			weight = defaultSeverityFactor
		}
		factor *= weight
	}

	return min(factor, maxIncidentFactor)
}
