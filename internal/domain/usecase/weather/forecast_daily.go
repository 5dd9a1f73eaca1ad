package weather

import (
	"time"

	"weather-dash/internal/domain/entity"
	"weather-dash/internal/domain/model/external"
)

// maxForecastDays bounds the derived daily view.
const maxForecastDays = 5

// convertCurrentWeather maps the remote current-conditions response to
// the snapshot entity.
func convertCurrentWeather(resp *external.CurrentWeatherResponse) *entity.WeatherSnapshot {
	snapshot := &entity.WeatherSnapshot{
		City:       resp.Name,
		Country:    resp.Sys.Country,
		Temp:       resp.Main.Temp,
		FeelsLike:  resp.Main.FeelsLike,
		TempMin:    resp.Main.TempMin,
		TempMax:    resp.Main.TempMax,
		Humidity:   resp.Main.Humidity,
		Pressure:   resp.Main.Pressure,
		WindSpeed:  resp.Wind.Speed,
		WindDeg:    resp.Wind.Deg,
		Clouds:     resp.Clouds.All,
		ObservedAt: time.Unix(resp.Dt, 0).UTC(),
		UTCOffset:  resp.Timezone,
	}

	if len(resp.Weather) > 0 {
		snapshot.ConditionID = resp.Weather[0].ID
		snapshot.Condition = resp.Weather[0].Main
		snapshot.Description = resp.Weather[0].Description
		snapshot.Icon = resp.Weather[0].Icon
	}

	return snapshot
}

// convertForecastSamples maps the remote forecast list to the raw sample
// series, keeping the list order.
func convertForecastSamples(resp *external.ForecastResponse) []entity.ForecastSample {
	samples := make([]entity.ForecastSample, 0, len(resp.List))
	for _, item := range resp.List {
		sample := entity.ForecastSample{
			Time: time.Unix(item.Dt, 0).UTC(),
			Temp: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			sample.Condition = item.Weather[0].Main
			sample.Description = item.Weather[0].Description
			sample.Icon = item.Weather[0].Icon
		}
		samples = append(samples, sample)
	}
	return samples
}

// BuildDailyForecast reduces the 3-hour sample series to at most five
// day buckets, ordered by first appearance. Days are cut in the city's
// UTC offset. Each bucket carries the day's min/max temperature and the
// condition of the sample at noon, or the day's first sample when no
// noon sample exists.
func BuildDailyForecast(samples []entity.ForecastSample, utcOffset int) []entity.DailyForecast {
	if len(samples) == 0 {
		return nil
	}

	loc := time.FixedZone("local", utcOffset)

	type bucket struct {
		first   entity.ForecastSample
		noon    *entity.ForecastSample
		tempMin float64
		tempMax float64
	}

	var order []string
	buckets := make(map[string]*bucket)

	for _, sample := range samples {
		local := sample.Time.In(loc)
		date := local.Format("2006-01-02")

		b, ok := buckets[date]
		if !ok {
			b = &bucket{first: sample, tempMin: sample.Temp, tempMax: sample.Temp}
			buckets[date] = b
			order = append(order, date)
		}

		if sample.Temp < b.tempMin {
			b.tempMin = sample.Temp
		}
		if sample.Temp > b.tempMax {
			b.tempMax = sample.Temp
		}
		if local.Hour() == 12 && b.noon == nil {
			s := sample
			b.noon = &s
		}
	}

	if len(order) > maxForecastDays {
		order = order[:maxForecastDays]
	}

	daily := make([]entity.DailyForecast, 0, len(order))
	for _, date := range order {
		b := buckets[date]
		rep := b.first
		if b.noon != nil {
			rep = *b.noon
		}

		daily = append(daily, entity.DailyForecast{
			Date:        date,
			Day:         rep.Time.In(loc).Format("Mon"),
			TempMax:     b.tempMax,
			TempMin:     b.tempMin,
			Condition:   rep.Condition,
			Description: rep.Description,
			Icon:        rep.Icon,
		})
	}

	return daily
}
