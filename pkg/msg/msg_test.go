package msg

import (
	"os"
	"path/filepath"
	"testing"
)

func loadCatalog(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "messages.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	Init(path)
}

func TestGetMessageFormatsPlaceholders(t *testing.T) {
	loadCatalog(t, "greet:\n  user: \"Hello {0}, you have {1} alerts\"\n")

	got := GetMessage("greet.user", "Ana", 3)
	want := "Hello Ana, you have 3 alerts"
	if got != want {
		t.Fatalf("GetMessage = %q, want %q", got, want)
	}
}

func TestGetMessageUnknownKey(t *testing.T) {
	got := GetMessage("no.such.key")
	if got != "Message not found: no.such.key" {
		t.Fatalf("GetMessage = %q, want the not-found marker", got)
	}
}

func TestGetMessageOrDefault(t *testing.T) {
	loadCatalog(t, "known:\n  key: \"from catalog\"\n")

	if got := GetMessageOrDefault("known.key", "fallback"); got != "from catalog" {
		t.Fatalf("got %q, want the catalog text", got)
	}
	if got := GetMessageOrDefault("unknown.key", "City {0} not found", "Zzyzx"); got != "City Zzyzx not found" {
		t.Fatalf("got %q, want the formatted default", got)
	}
}

func TestInitSurvivesMissingFile(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "absent.yml"))

	if got := GetMessageOrDefault("any.key", "default"); got != "default" {
		t.Fatalf("got %q, want the default after a failed load", got)
	}
}
