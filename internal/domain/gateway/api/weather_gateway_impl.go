package api

import (
	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/model/external"
	"weather-dash/pkg/http"
	"weather-dash/pkg/log"
)

// weatherGatewayImpl implements the WeatherGateway interface against the
// OpenWeatherMap REST API.
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The client's ReadTimeout is the fixed per-call timeout of the query flow.
func NewWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// CurrentWeather fetches current conditions for a city
func (w *weatherGatewayImpl) CurrentWeather(city string) (*external.CurrentWeatherResponse, *model.QueryError) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.queryParams(city)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.CurrentWeatherResponse), nil
	}

	logRemoteFailure("weather", city, status, errResp, err)
	return nil, model.Classify(city, status, err)
}

// Forecast fetches the 5-day / 3-hour forecast for a city
func (w *weatherGatewayImpl) Forecast(city string) (*external.ForecastResponse, *model.QueryError) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.queryParams(city)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}

	logRemoteFailure("forecast", city, status, errResp, err)
	return nil, model.Classify(city, status, err)
}

func (w *weatherGatewayImpl) queryParams(city string) map[string]string {
	return map[string]string{
		"q":     city,
		"units": "metric",
		"appid": w.apiKey,
	}
}

func logRemoteFailure(endpoint, city string, status int, errResp any, err error) {
	apiMessage := ""
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
		apiMessage = apiErr.Message
	}
	log.Warnw("Weather API call failed",
		"endpoint", endpoint,
		"city", city,
		"status", status,
		"apiMessage", apiMessage,
		"error", err,
	)
}
