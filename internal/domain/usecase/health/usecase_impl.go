package health

import (
	"weather-dash/internal/domain/model"
	"weather-dash/internal/infra/storage"
)

type healthUseCase struct {
	backend storage.Backend
}

func NewHealthUseCase(backend storage.Backend) UseCase {
	return &healthUseCase{
		backend: backend,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	storageHealth := model.ComponentHealth{
		Status: model.StatusUp,
		Name:   useCase.backend.Name(),
	}
	if err := useCase.backend.Ping(); err != nil {
		storageHealth.Status = model.StatusDown
		storageHealth.Detail = err.Error()
	}

	overallStatus := model.StatusUp
	if storageHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Storage: storageHealth,
	}
}
