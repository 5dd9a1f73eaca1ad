package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/usecase/favorite"
)

type FavoriteController struct {
	api     *echo.Group
	useCase favorite.UseCase
}

func NewFavoriteController(api *echo.Group, useCase favorite.UseCase) *FavoriteController {
	return &FavoriteController{api: api, useCase: useCase}
}

// InitFavoriteRoutes initializes favorite routes
func (controller *FavoriteController) InitFavoriteRoutes() {
	controller.api.GET("/favorites", controller.List)
	controller.api.GET("/favorites/:name", controller.IsFavorite)
	controller.api.POST("/favorites", controller.Add)
	controller.api.DELETE("/favorites/:name", controller.Remove)
	controller.api.DELETE("/favorites", controller.Clear)
}

// List returns all favorite cities in insertion order.
func (controller *FavoriteController) List(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.List())
}

// IsFavorite reports whether a city is pinned.
func (controller *FavoriteController) IsFavorite(c echo.Context) error {
	name := c.Param("name")
	return c.JSON(http.StatusOK, map[string]any{
		"name":     name,
		"favorite": controller.useCase.IsFavorite(name),
	})
}

// Add pins a city. Re-adding an existing city is a silent no-op.
func (controller *FavoriteController) Add(c echo.Context) error {
	var dto model.AddFavoriteDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if dto.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	controller.useCase.Add(dto.Name, dto.Country)
	return c.JSON(http.StatusCreated, map[string]string{"message": "City added to favorites"})
}

// Remove unpins a city.
func (controller *FavoriteController) Remove(c echo.Context) error {
	controller.useCase.Remove(c.Param("name"))
	return c.NoContent(http.StatusNoContent)
}

// Clear empties the favorites list.
func (controller *FavoriteController) Clear(c echo.Context) error {
	controller.useCase.Clear()
	return c.NoContent(http.StatusNoContent)
}
