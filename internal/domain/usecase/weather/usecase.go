package weather

import "weather-dash/internal/domain/model"

type UseCase interface {
	// FetchWeather runs the full query flow for a city: current
	// conditions first, then the forecast, and returns the resulting
	// query state.
	FetchWeather(city string) model.QueryState

	// Retry re-runs the flow for the last attempted city. Without a
	// prior attempt it returns the current state unchanged.
	Retry() model.QueryState

	// ClearError dismisses the last error without triggering a fetch.
	ClearError() model.QueryState

	// State returns a copy of the current query state.
	State() model.QueryState
}
