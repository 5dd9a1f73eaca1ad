package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func loadProperties(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	Init(path)
}

func TestPlainValuesPassThrough(t *testing.T) {
	loadProperties(t, `
app:
  server:
    port: "8080"
    context-path: /api
  retries: 3
  verbose: true
`)

	if got := GetString("app.server.port"); got != "8080" {
		t.Fatalf("port = %q, want 8080", got)
	}
	if got := GetString("app.server.context-path"); got != "/api" {
		t.Fatalf("context-path = %q, want /api", got)
	}
	if got := GetInt("app.retries"); got != 3 {
		t.Fatalf("retries = %d, want 3", got)
	}
	if !GetBool("app.verbose") {
		t.Fatalf("verbose = false, want true")
	}
}

func TestPlaceholderResolvesFromEnv(t *testing.T) {
	t.Setenv("TEST_SERVER_PORT", "9999")
	loadProperties(t, `
app:
  server:
    port: ${TEST_SERVER_PORT:8080}
`)

	if got := GetString("app.server.port"); got != "9999" {
		t.Fatalf("port = %q, want the environment value", got)
	}
}

func TestPlaceholderFallsBackToDefault(t *testing.T) {
	loadProperties(t, `
app:
  server:
    port: ${UNSET_TEST_PORT:8080}
  password: ${UNSET_TEST_PASSWORD:}
  empty: ${UNSET_TEST_NO_DEFAULT}
`)

	if got := GetString("app.server.port"); got != "8080" {
		t.Fatalf("port = %q, want the inline default", got)
	}
	// An empty default resolves to "", never the literal placeholder.
	if got := GetString("app.password"); got != "" {
		t.Fatalf("password = %q, want empty string", got)
	}
	if got := GetString("app.empty"); got != "" {
		t.Fatalf("empty = %q, want empty string", got)
	}
}

func TestGetDurationOrDefault(t *testing.T) {
	loadProperties(t, `
app:
  weather:
    timeout: 10s
`)

	if got := GetDuration("app.weather.timeout"); got != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s", got)
	}
	if got := GetDurationOrDefault("app.weather.timeout", time.Minute); got != 10*time.Second {
		t.Fatalf("timeout = %v, want the configured 10s", got)
	}
	if got := GetDurationOrDefault("app.weather.unset", time.Minute); got != time.Minute {
		t.Fatalf("fallback = %v, want 1m", got)
	}
}

func TestGetStringOrDefault(t *testing.T) {
	loadProperties(t, `
app:
  name: weather-dash
`)

	if got := GetStringOrDefault("app.name", "other"); got != "weather-dash" {
		t.Fatalf("name = %q, want weather-dash", got)
	}
	if got := GetStringOrDefault("app.unset", "fallback"); got != "fallback" {
		t.Fatalf("fallback = %q, want fallback", got)
	}
}
