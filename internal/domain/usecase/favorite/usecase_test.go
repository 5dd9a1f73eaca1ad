package favorite

import (
	"testing"

	"weather-dash/internal/infra/storage"
)

func newTestUseCase(t *testing.T) UseCase {
	t.Helper()
	return NewFavoriteUseCase(storage.NewFileSlot(t.TempDir(), "favorites"))
}

func TestAddAndList(t *testing.T) {
	uc := newTestUseCase(t)

	uc.Add("Paris", "FR")
	uc.Add("Tokyo", "JP")

	list := uc.List()
	if len(list) != 2 {
		t.Fatalf("got %d favorites, want 2", len(list))
	}
	if list[0].Name != "Paris" || list[0].Country != "FR" {
		t.Fatalf("first entry = %+v, want Paris/FR", list[0])
	}
	if list[0].AddedAt == 0 {
		t.Fatalf("entry has no timestamp")
	}
}

// Adding the same city again is a no-op regardless of casing.
func TestAddIsCaseInsensitiveIdempotent(t *testing.T) {
	uc := newTestUseCase(t)

	uc.Add("Paris", "FR")
	uc.Add("paris", "FR")
	uc.Add("PARIS", "FR")

	list := uc.List()
	if len(list) != 1 {
		t.Fatalf("got %d favorites, want 1", len(list))
	}
	if list[0].Name != "Paris" {
		t.Fatalf("kept entry = %q, want the original casing", list[0].Name)
	}
}

func TestRemove(t *testing.T) {
	uc := newTestUseCase(t)
	uc.Add("Paris", "FR")
	uc.Add("Tokyo", "JP")

	uc.Remove("PARIS")

	list := uc.List()
	if len(list) != 1 || list[0].Name != "Tokyo" {
		t.Fatalf("list = %+v, want only Tokyo", list)
	}

	// Removing a city that is not stored changes nothing.
	uc.Remove("Berlin")
	if got := uc.List(); len(got) != 1 {
		t.Fatalf("got %d favorites after removing absent city, want 1", len(got))
	}
}

func TestIsFavorite(t *testing.T) {
	uc := newTestUseCase(t)
	uc.Add("Paris", "FR")

	if !uc.IsFavorite("paris") {
		t.Fatalf("IsFavorite(paris) = false, want case-insensitive match")
	}
	if uc.IsFavorite("Tokyo") {
		t.Fatalf("IsFavorite(Tokyo) = true, want false")
	}
}

func TestClear(t *testing.T) {
	uc := newTestUseCase(t)
	uc.Add("Paris", "FR")
	uc.Add("Tokyo", "JP")

	uc.Clear()

	if got := uc.List(); len(got) != 0 {
		t.Fatalf("got %d favorites after clear, want 0", len(got))
	}
}

// Favorites survive a restart through the durable slot.
func TestPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	uc := NewFavoriteUseCase(storage.NewFileSlot(dir, "favorites"))
	uc.Add("Paris", "FR")
	uc.Add("Tokyo", "JP")
	uc.Remove("Tokyo")

	reopened := NewFavoriteUseCase(storage.NewFileSlot(dir, "favorites"))
	list := reopened.List()
	if len(list) != 1 || list[0].Name != "Paris" {
		t.Fatalf("reopened list = %+v, want only Paris", list)
	}
}

// List hands out a copy, mutating it must not leak into the store.
func TestListReturnsCopy(t *testing.T) {
	uc := newTestUseCase(t)
	uc.Add("Paris", "FR")

	list := uc.List()
	list[0].Name = "Mutated"

	if got := uc.List(); got[0].Name != "Paris" {
		t.Fatalf("stored entry = %q, caller mutation leaked in", got[0].Name)
	}
}
