package external

// CurrentWeatherResponse represents the current-conditions response from
// the OpenWeatherMap weather endpoint.
type CurrentWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Weather []WeatherConditionDTO `json:"weather"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
	Dt       int64 `json:"dt"`
	Timezone int   `json:"timezone"`
}

// WeatherConditionDTO is the condition block shared by both endpoints.
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ForecastResponse represents the 5-day / 3-hour forecast response.
type ForecastResponse struct {
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
	List []ForecastItemDTO `json:"list"`
}

// ForecastItemDTO is a single 3-hour sample of the forecast list.
type ForecastItemDTO struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// APIErrorResponse represents error bodies from the OpenWeatherMap API.
// The cod field is a string in error responses.
type APIErrorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}
