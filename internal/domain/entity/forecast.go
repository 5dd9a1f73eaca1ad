package entity

import "time"

// ForecastSample is a single timestamped point of the raw forecast
// series, one every three hours.
type ForecastSample struct {
	Time        time.Time `json:"time"`
	Temp        float64   `json:"temp"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// DailyForecast is the derived per-day view of the forecast series:
// min/max over the day's samples plus a representative condition.
type DailyForecast struct {
	Date        string  `json:"date"`
	Day         string  `json:"day"`
	TempMax     float64 `json:"tempMax"`
	TempMin     float64 `json:"tempMin"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}
