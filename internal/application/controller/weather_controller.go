package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/usecase/search"
	"weather-dash/internal/domain/usecase/weather"
	"weather-dash/internal/domain/validate"
)

type WeatherController struct {
	api           *echo.Group
	useCase       weather.UseCase
	searchUseCase search.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, searchUseCase search.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, searchUseCase: searchUseCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetState)
	controller.api.GET("/weather/search", controller.Search)
	controller.api.POST("/weather/retry", controller.Retry)
	controller.api.DELETE("/weather/error", controller.ClearError)
}

// GetState returns the current query state without triggering a fetch.
func (controller *WeatherController) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.State())
}

// Search validates the city query, runs the two-stage weather fetch and
// feeds the recent-search history. The search is recorded for every
// submission that passes validation, successful or not.
func (controller *WeatherController) Search(c echo.Context) error {
	result := validate.City(c.QueryParam("city"))
	if !result.Valid {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":  result.Message(),
			"reason": string(result.Reason),
		})
	}

	state := controller.useCase.FetchWeather(result.City)
	controller.searchUseCase.AddSearch(result.City)

	return c.JSON(statusForState(state), state)
}

// Retry re-runs the flow for the last attempted city.
func (controller *WeatherController) Retry(c echo.Context) error {
	state := controller.useCase.Retry()
	return c.JSON(statusForState(state), state)
}

// ClearError dismisses the current error banner without refetching.
func (controller *WeatherController) ClearError(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.ClearError())
}

// statusForState maps a query outcome to the response status code.
func statusForState(state model.QueryState) int {
	if state.Phase != model.PhaseFailed || state.Error == nil {
		return http.StatusOK
	}

	switch state.Error.Kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindMissingCredential:
		return http.StatusServiceUnavailable
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindRateLimited:
		return http.StatusTooManyRequests
	case model.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
