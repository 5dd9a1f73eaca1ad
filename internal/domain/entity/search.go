package entity

// RecentSearchEntry records one submitted search. The store keeps the 5
// most recent distinct cities, most recent first.
type RecentSearchEntry struct {
	City       string `json:"city"`
	SearchedAt int64  `json:"searchedAt"`
}
