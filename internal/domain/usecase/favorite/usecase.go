package favorite

import "weather-dash/internal/domain/entity"

type UseCase interface {
	// List returns the favorite cities in insertion order.
	List() []entity.FavoriteEntry

	// Add pins a city. Adding an existing city (any casing) is a no-op.
	Add(name string, country string)

	// Remove unpins every entry matching name case-insensitively.
	Remove(name string)

	// IsFavorite reports case-insensitive membership.
	IsFavorite(name string) bool

	// Clear empties the list.
	Clear()
}
