package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/usecase/search"
)

type SearchController struct {
	api     *echo.Group
	useCase search.UseCase
}

func NewSearchController(api *echo.Group, useCase search.UseCase) *SearchController {
	return &SearchController{api: api, useCase: useCase}
}

// InitSearchRoutes initializes search-history routes
func (controller *SearchController) InitSearchRoutes() {
	controller.api.GET("/searches", controller.List)
	controller.api.DELETE("/searches", controller.Clear)
}

// List returns the recent searches, most recent first.
func (controller *SearchController) List(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.List())
}

// Clear empties the search history.
func (controller *SearchController) Clear(c echo.Context) error {
	controller.useCase.Clear()
	return c.NoContent(http.StatusNoContent)
}
