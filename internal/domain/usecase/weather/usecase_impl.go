package weather

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"weather-dash/internal/domain/entity"
	"weather-dash/internal/domain/gateway/api"
	"weather-dash/internal/domain/model"
	"weather-dash/pkg/log"
	"weather-dash/pkg/msg"
)

type weatherUseCase struct {
	mu         sync.Mutex
	apiKey     string
	apiGateway api.WeatherGateway
	state      model.QueryState
	generation uint64
	lastCity   string
}

// NewWeatherUseCase creates the weather query service. The apiKey is the
// remote credential; its absence fails queries, not construction.
func NewWeatherUseCase(apiKey string, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiKey:     apiKey,
		apiGateway: apiGateway,
		state:      model.QueryState{Phase: model.PhaseIdle},
	}
}

// FetchWeather runs the two-stage query flow. Overlapping fetches follow
// a last-initiated-wins policy: every fetch takes a generation token and
// a result is discarded if a newer fetch started meanwhile.
func (uc *weatherUseCase) FetchWeather(city string) model.QueryState {
	requestID := uuid.New().String()
	city = strings.TrimSpace(city)

	// Preconditions, checked before any network I/O.
	if uc.apiKey == "" {
		log.Warnw("Weather query rejected, API key missing", "request_id", requestID)
		return uc.fail(city, model.NewMissingCredentialError())
	}
	if city == "" {
		return uc.fail(city, model.NewValidationError(
			msg.GetMessageOrDefault("weather.err.empty-city", "Please enter a city name")))
	}

	uc.mu.Lock()
	uc.generation++
	gen := uc.generation
	uc.lastCity = city
	uc.state = model.QueryState{Phase: model.PhaseLoading, City: city}
	uc.mu.Unlock()

	log.Infow("Fetching weather", "request_id", requestID, "city", city)

	// Stage 1: current conditions. A failure here fails the whole query.
	current, qerr := uc.apiGateway.CurrentWeather(city)
	if qerr != nil {
		return uc.commit(gen, model.QueryState{
			Phase: model.PhaseFailed,
			City:  city,
			Error: qerr,
		})
	}

	snapshot := convertCurrentWeather(current)

	// Stage 2: forecast, gated on stage 1. Its failure is absorbed.
	var daily []entity.DailyForecast
	forecast, ferr := uc.apiGateway.Forecast(city)
	if ferr != nil {
		log.Warnw("Forecast unavailable, current weather still loaded",
			"request_id", requestID, "city", city, "kind", ferr.Kind)
	} else {
		daily = BuildDailyForecast(convertForecastSamples(forecast), forecast.City.Timezone)
	}

	log.Infow("Weather loaded",
		"request_id", requestID,
		"city", snapshot.City,
		"temp", snapshot.Temp,
		"forecastDays", len(daily))

	return uc.commit(gen, model.QueryState{
		Phase:    model.PhaseReady,
		City:     city,
		Snapshot: snapshot,
		Forecast: daily,
	})
}

// Retry re-runs the full flow for the last attempted city.
func (uc *weatherUseCase) Retry() model.QueryState {
	uc.mu.Lock()
	city := uc.lastCity
	uc.mu.Unlock()

	if city == "" {
		return uc.State()
	}
	return uc.FetchWeather(city)
}

// ClearError drops the error field only. Snapshot and forecast are left
// untouched so the UI can dismiss a stale banner without refetching.
func (uc *weatherUseCase) ClearError() model.QueryState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.state.Error = nil
	if uc.state.Phase == model.PhaseFailed {
		if uc.state.Snapshot != nil {
			uc.state.Phase = model.PhaseReady
		} else {
			uc.state.Phase = model.PhaseIdle
		}
	}
	return uc.state
}

func (uc *weatherUseCase) State() model.QueryState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// fail records a precondition failure that never reached the network.
func (uc *weatherUseCase) fail(city string, qerr *model.QueryError) model.QueryState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if city != "" {
		uc.lastCity = city
	}
	uc.state = model.QueryState{
		Phase: model.PhaseFailed,
		City:  city,
		Error: qerr,
	}
	return uc.state
}

// commit installs a fetch outcome unless a newer fetch superseded it.
func (uc *weatherUseCase) commit(gen uint64, next model.QueryState) model.QueryState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if gen != uc.generation {
		log.Debugw("Discarding stale weather result", "city", next.City)
		return uc.state
	}
	uc.state = next
	return uc.state
}
