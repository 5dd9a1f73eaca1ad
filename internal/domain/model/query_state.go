package model

import "weather-dash/internal/domain/entity"

// QueryPhase is the visible phase of the weather query state machine.
type QueryPhase string

const (
	PhaseIdle    QueryPhase = "idle"
	PhaseLoading QueryPhase = "loading"
	PhaseReady   QueryPhase = "ready"
	PhaseFailed  QueryPhase = "failed"
)

// QueryState describes the dashboard-visible outcome of the last weather
// query. Exactly one of loading, error-present, snapshot-present or
// all-absent holds at any time.
type QueryState struct {
	Phase    QueryPhase              `json:"phase"`
	City     string                  `json:"city,omitempty"`
	Snapshot *entity.WeatherSnapshot `json:"snapshot,omitempty"`
	Forecast []entity.DailyForecast  `json:"forecast,omitempty"`
	Error    *QueryError             `json:"error,omitempty"`
}
