package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	// WeatherAPIKey is the remote weather API credential. Its absence is
	// a query-time precondition failure, never a startup crash.
	WeatherAPIKey string
}

var Env *EnvConfig

func init() {
	// Local development convenience, a missing .env is fine.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-dash"),
		WeatherAPIKey:   viper.GetString("WEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
