package health

import "weather-dash/internal/domain/model"

type UseCase interface {
	// CheckHealth reports the aggregate application health.
	CheckHealth() model.HealthResponse
}
