package entity

// WeatherCondition is a coarse current-condition bucket.
type WeatherCondition string

const (
	WeatherClear        WeatherCondition = "clear"
	WeatherClouds       WeatherCondition = "clouds"
	WeatherRain         WeatherCondition = "rain"
	WeatherDrizzle      WeatherCondition = "drizzle"
	WeatherThunderstorm WeatherCondition = "thunderstorm"
	WeatherSnow         WeatherCondition = "snow"
	WeatherMist         WeatherCondition = "mist"
	WeatherFog          WeatherCondition = "fog"
)

// WeatherSnapshot is the current weather at a location.
type WeatherSnapshot struct {
	Condition   WeatherCondition `json:"condition"`
	Temperature float64          `json:"temperature"` // Celsius
	Humidity    int              `json:"humidity"`    // percent
	Visibility  int              `json:"visibility"`  // meters
	WindSpeed   float64          `json:"wind_speed"`  // m/s
	Description string           `json:"description"`
	Fallback    bool             `json:"fallback"`
}

// NeutralWeather is the placeholder used when no provider answer is available.
func NeutralWeather() *WeatherSnapshot {
	return &WeatherSnapshot{
		Condition:   WeatherClear,
		Temperature: 28.0,
		Humidity:    70,
		Visibility:  10000,
		WindSpeed:   3.0,
		Description: "Datos no disponibles",
		Fallback:    true,
	}
}
