package storage

import (
	"errors"

	"weather-dash/pkg/log"
)

// Mirror binds an in-memory value to a durable slot. The slot is read
// once at construction; every Update persists synchronously. Durable
// state is best effort: read and write failures are logged and absorbed,
// leaving the in-memory value authoritative for the session.
type Mirror[T any] struct {
	slot  Slot
	value T
}

// NewMirror reads the slot once, falling back to the default value when
// the slot is empty or unreadable.
func NewMirror[T any](slot Slot, defaultValue T) *Mirror[T] {
	m := &Mirror[T]{
		slot:  slot,
		value: defaultValue,
	}

	var stored T
	err := slot.Read(&stored)
	switch {
	case err == nil:
		m.value = stored
	case errors.Is(err, ErrSlotEmpty):
		// First run, nothing stored yet.
	default:
		log.Warnw("Durable slot unreadable, using default value", "slot", slot.Name(), "error", err)
	}

	return m
}

// Get returns the current in-memory value.
func (m *Mirror[T]) Get() T {
	return m.value
}

// Update replaces the in-memory value and persists it. Persistence
// failures are logged, never surfaced.
func (m *Mirror[T]) Update(value T) {
	m.value = value
	if err := m.slot.Write(value); err != nil {
		log.Warnw("Durable slot write failed, in-memory state kept", "slot", m.slot.Name(), "error", err)
	}
}
