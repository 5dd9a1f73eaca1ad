package entity

import "time"

// WeatherSnapshot is the current-conditions observation for one city at
// one instant. It is built once from a remote response and replaced
// wholesale on the next successful query, never mutated in place.
type WeatherSnapshot struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Temp        float64   `json:"temp"`
	FeelsLike   float64   `json:"feelsLike"`
	TempMin     float64   `json:"tempMin"`
	TempMax     float64   `json:"tempMax"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
	WindSpeed   float64   `json:"windSpeed"`
	WindDeg     int       `json:"windDeg"`
	ConditionID int       `json:"conditionId"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Clouds      int       `json:"clouds"`
	ObservedAt  time.Time `json:"observedAt"`
	UTCOffset   int       `json:"utcOffset"`
}
