package entity

// FavoriteEntry is a city pinned by explicit user action. At most one
// entry exists per city name, compared case-insensitively.
type FavoriteEntry struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	AddedAt int64  `json:"addedAt"`
}
