package search

import "weather-dash/internal/domain/entity"

// maxRecentSearches bounds the history length.
const maxRecentSearches = 5

type UseCase interface {
	// List returns the recent searches, most recent first.
	List() []entity.RecentSearchEntry

	// AddSearch records a submitted city. An existing case-insensitive
	// match moves to the front instead of duplicating; the list is
	// truncated to the 5 most recent.
	AddSearch(city string)

	// Clear empties the history.
	Clear()
}
