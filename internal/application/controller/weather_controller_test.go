package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/model/external"
	"weather-dash/internal/domain/usecase/search"
	"weather-dash/internal/domain/usecase/weather"
	"weather-dash/internal/infra/storage"
)

// scriptedGateway returns canned responses for both weather endpoints.
type scriptedGateway struct {
	currentErr  *model.QueryError
	forecastErr *model.QueryError
}

func (g *scriptedGateway) CurrentWeather(city string) (*external.CurrentWeatherResponse, *model.QueryError) {
	if g.currentErr != nil {
		return nil, g.currentErr
	}
	resp := &external.CurrentWeatherResponse{Name: city, Dt: 1714560000, Timezone: 0}
	resp.Sys.Country = "FR"
	resp.Main.Temp = 21.5
	resp.Weather = []external.WeatherConditionDTO{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}}
	return resp, nil
}

func (g *scriptedGateway) Forecast(city string) (*external.ForecastResponse, *model.QueryError) {
	if g.forecastErr != nil {
		return nil, g.forecastErr
	}
	resp := &external.ForecastResponse{}
	resp.City.Name = city
	item := external.ForecastItemDTO{Dt: 1714560000}
	item.Main.Temp = 18
	resp.List = []external.ForecastItemDTO{item}
	return resp, nil
}

func newWeatherServer(t *testing.T, gateway *scriptedGateway, apiKey string) (*echo.Echo, search.UseCase) {
	t.Helper()

	e := echo.New()
	group := e.Group("/api")

	searchUseCase := search.NewSearchUseCase(storage.NewFileSlot(t.TempDir(), "searches"))
	weatherUseCase := weather.NewWeatherUseCase(apiKey, gateway)

	NewWeatherController(group, weatherUseCase, searchUseCase).InitWeatherRoutes()
	return e, searchUseCase
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) model.QueryState {
	t.Helper()
	var state model.QueryState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v (body %s)", err, rec.Body.String())
	}
	return state
}

func TestGetStateStartsIdle(t *testing.T) {
	e, _ := newWeatherServer(t, &scriptedGateway{}, "key")

	req := httptest.NewRequest(http.MethodGet, "/api/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if state := decodeState(t, rec); state.Phase != model.PhaseIdle {
		t.Fatalf("phase = %q, want idle", state.Phase)
	}
}

func TestSearchSuccess(t *testing.T) {
	e, searchUseCase := newWeatherServer(t, &scriptedGateway{}, "key")

	req := httptest.NewRequest(http.MethodGet, "/api/weather/search?city=Paris", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if state.Phase != model.PhaseReady || state.Snapshot == nil {
		t.Fatalf("state = %+v, want ready with snapshot", state)
	}

	history := searchUseCase.List()
	if len(history) != 1 || history[0].City != "Paris" {
		t.Fatalf("history = %+v, want the searched city", history)
	}
}

func TestSearchRejectsInvalidCity(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		reason string
	}{
		{"missing", "", "empty"},
		{"too short", "?city=A", "too-short"},
		{"digits", "?city=Paris99", "invalid-characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, searchUseCase := newWeatherServer(t, &scriptedGateway{}, "key")

			req := httptest.NewRequest(http.MethodGet, "/api/weather/search"+tc.query, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["reason"] != tc.reason {
				t.Fatalf("reason = %q, want %q", body["reason"], tc.reason)
			}
			if body["error"] == "" {
				t.Fatalf("response has no user-facing message")
			}
			// Rejected input never reaches the history.
			if history := searchUseCase.List(); len(history) != 0 {
				t.Fatalf("history = %+v, want empty", history)
			}
		})
	}
}

// A validated search is recorded even when the remote call fails.
func TestSearchFailureStillRecorded(t *testing.T) {
	gateway := &scriptedGateway{
		currentErr: model.Classify("Zzyzx", 404, errors.New("http error: status 404")),
	}
	e, searchUseCase := newWeatherServer(t, gateway, "key")

	req := httptest.NewRequest(http.MethodGet, "/api/weather/search?city=Zzyzx", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	state := decodeState(t, rec)
	if state.Phase != model.PhaseFailed || state.Error == nil || state.Error.Kind != model.KindNotFound {
		t.Fatalf("state = %+v, want a not-found failure", state)
	}
	if history := searchUseCase.List(); len(history) != 1 {
		t.Fatalf("history = %+v, want the failed search recorded", history)
	}
}

func TestSearchStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  *model.QueryError
		want int
	}{
		{"timeout", &model.QueryError{Kind: model.KindTimeout, Message: "timed out"}, http.StatusGatewayTimeout},
		{"rate limited", &model.QueryError{Kind: model.KindRateLimited, Message: "slow down"}, http.StatusTooManyRequests},
		{"server error", &model.QueryError{Kind: model.KindServiceUnavailable, Message: "down"}, http.StatusBadGateway},
		{"network", &model.QueryError{Kind: model.KindNetwork, Message: "unreachable"}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newWeatherServer(t, &scriptedGateway{currentErr: tc.err}, "key")

			req := httptest.NewRequest(http.MethodGet, "/api/weather/search?city=Paris", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestSearchWithoutAPIKey(t *testing.T) {
	e, _ := newWeatherServer(t, &scriptedGateway{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/weather/search?city=Paris", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	state := decodeState(t, rec)
	if state.Error == nil || state.Error.Kind != model.KindMissingCredential {
		t.Fatalf("error = %+v, want missing-credential", state.Error)
	}
}

func TestRetryRepeatsLastSearch(t *testing.T) {
	gateway := &scriptedGateway{
		currentErr: &model.QueryError{Kind: model.KindServiceUnavailable, Message: "down"},
	}
	e, _ := newWeatherServer(t, gateway, "key")

	req := httptest.NewRequest(http.MethodGet, "/api/weather/search?city=Paris", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	// The outage recovers before the retry.
	gateway.currentErr = nil

	retryReq := httptest.NewRequest(http.MethodPost, "/api/weather/retry", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, retryReq)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	state := decodeState(t, rec)
	if state.Phase != model.PhaseReady || state.City != "Paris" {
		t.Fatalf("state = %+v, want Paris ready", state)
	}
}

func TestClearErrorEndpoint(t *testing.T) {
	gateway := &scriptedGateway{
		currentErr: &model.QueryError{Kind: model.KindTimeout, Message: "timed out"},
	}
	e, _ := newWeatherServer(t, gateway, "key")

	req := httptest.NewRequest(http.MethodGet, "/api/weather/search?city=Paris", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	clearReq := httptest.NewRequest(http.MethodDelete, "/api/weather/error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, clearReq)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	state := decodeState(t, rec)
	if state.Error != nil {
		t.Fatalf("error = %+v, want cleared", state.Error)
	}
	if state.Phase == model.PhaseFailed {
		t.Fatalf("phase = %q, want failure dismissed", state.Phase)
	}
}
