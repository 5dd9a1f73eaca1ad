package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"weather-dash/configs"
	"weather-dash/internal/application/controller"
	"weather-dash/internal/application/middleware"
	"weather-dash/internal/application/schedule"
	"weather-dash/internal/domain/gateway/api"
	"weather-dash/internal/domain/usecase/favorite"
	"weather-dash/internal/domain/usecase/health"
	"weather-dash/internal/domain/usecase/search"
	"weather-dash/internal/domain/usecase/weather"
	"weather-dash/internal/infra/storage"
	"weather-dash/pkg/http"
	"weather-dash/pkg/log"
	"weather-dash/pkg/msg"
	"weather-dash/pkg/redis"
	"weather-dash/pkg/resource"

	"time"
)

const (
	favoritesSlotKey = "weather-favorites"
	searchesSlotKey  = "weather-recent-searches"
)

func main() {
	log.Info(msg.GetMessageOrDefault("app.start", "Starting {0}", configs.Env.ApplicationName))

	if configs.Env.WeatherAPIKey == "" {
		log.Warn("WEATHER_API_KEY is not set, weather queries will fail until it is configured")
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)

	apiGroup := e.Group(resource.GetStringOrDefault("app.server.context-path", "/api"))

	// Durable storage backend for the persistence mirrors
	backend := buildStorageBackend()

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(
		resource.GetStringOrDefault("app.weather.base-url", "https://api.openweathermap.org/data/2.5"),
		configs.Env.WeatherAPIKey,
		http.ClientOptions{
			ReadTimeout: resource.GetDurationOrDefault("app.weather.timeout", 10*time.Second),
		},
	)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(configs.Env.WeatherAPIKey, weatherGateway)
	favoriteUseCase := favorite.NewFavoriteUseCase(backend.Slot(favoritesSlotKey))
	searchUseCase := search.NewSearchUseCase(backend.Slot(searchesSlotKey))
	healthUseCase := health.NewHealthUseCase(backend)

	// Init Controller
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase, searchUseCase)
	favoriteController := controller.NewFavoriteController(apiGroup, favoriteUseCase)
	searchController := controller.NewSearchController(apiGroup, searchUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	favoriteController.InitFavoriteRoutes()
	searchController.InitSearchRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	refreshScheduler := schedule.NewRefreshScheduler(weatherUseCase, resource.GetString("app.refresh.cron"))
	refreshScheduler.InitRefreshScheduleTasks()
	defer refreshScheduler.Stop()

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	e.Logger.Fatal(e.Start(":" + port))
}

// buildStorageBackend selects the durable slot backend from properties.
// Redis problems fall back to file slots so the dashboard still runs.
func buildStorageBackend() storage.Backend {
	if resource.GetStringOrDefault("app.storage.backend", "file") == "redis" {
		backend, err := buildRedisBackend()
		if err == nil {
			log.Info("Using redis storage backend")
			return backend
		}
		log.Warnf("Redis backend unavailable (%v), falling back to file storage", err)
	}

	dir := resource.GetStringOrDefault("app.storage.dir", "./data")
	log.Infof("Using file storage backend at %s", dir)
	return storage.NewFileBackend(dir)
}

// buildRedisBackend creates the Redis backend and verifies the server is
// actually reachable before it is accepted.
func buildRedisBackend() (storage.Backend, error) {
	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.storage.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.storage.redis.port", 6379)).
		WithPassword(resource.GetString("app.storage.redis.password")).
		WithDatabase(resource.GetIntOrDefault("app.storage.redis.database", 0)))
	if err != nil {
		return nil, err
	}

	backend := storage.NewRedisBackend(client)
	if err := backend.Ping(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return backend, nil
}
