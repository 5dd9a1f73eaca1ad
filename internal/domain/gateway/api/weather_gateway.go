package api

import (
	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/model/external"
)

// WeatherGateway defines the interface for the remote weather API calls.
// Failures come back already classified as *model.QueryError.
type WeatherGateway interface {
	// CurrentWeather fetches current conditions for a city.
	CurrentWeather(city string) (*external.CurrentWeatherResponse, *model.QueryError)

	// Forecast fetches the 5-day / 3-hour forecast for a city.
	Forecast(city string) (*external.ForecastResponse, *model.QueryError)
}
