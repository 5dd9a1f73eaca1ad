package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var props = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// init loads application properties from YAML. A missing file leaves the
// property set empty so every lookup falls back to its caller default.
func init() {
	// Placeholders resolve against the environment, so .env must be in
	// place before the properties file is parsed.
	_ = godotenv.Load()

	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	Init(value)
}

func Init(filepath string) {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Properties file %s not loaded (%v), using defaults", filepath, err)
		return
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	props = viper.New()
	if err := props.MergeConfigMap(resolved); err != nil {
		log.Printf("Error merging properties from %s: %v", filepath, err)
	}
}

// parsePropertiesMap reads the YAML tree recursively, resolving
// ${ENV_NAME:default} placeholders in string values.
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${ENV_NAME:default} placeholder. Plain
// strings pass through unchanged.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	return defaultValue
}

func Get(key string) any {
	return props.Get(key)
}

func GetString(key string) string {
	return props.GetString(key)
}

// GetStringOrDefault returns the property value, or def when unset or empty.
func GetStringOrDefault(key, def string) string {
	value := props.GetString(key)
	if value == "" {
		return def
	}
	return value
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

// GetDurationOrDefault returns the property duration, or def when unset.
func GetDurationOrDefault(key string, def time.Duration) time.Duration {
	if !props.IsSet(key) {
		return def
	}
	return props.GetDuration(key)
}

func GetInt(key string) int {
	return props.GetInt(key)
}

// GetIntOrDefault returns the property value, or def when unset.
func GetIntOrDefault(key string, def int) int {
	if !props.IsSet(key) {
		return def
	}
	return props.GetInt(key)
}

func GetInt64(key string) int64 {
	return props.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return props.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return props.GetStringSlice(key)
}
