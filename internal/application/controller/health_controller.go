package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth)
}

// CheckHealth returns the aggregate application health.
func (controller *HealthController) CheckHealth(c echo.Context) error {
	response := controller.useCase.CheckHealth()

	status := http.StatusOK
	if response.Status != model.StatusUp {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, response)
}
