package model

// AddFavoriteDTO is the request body for pinning a city.
type AddFavoriteDTO struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}
