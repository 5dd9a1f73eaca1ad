package favorite

import (
	"strings"
	"sync"
	"time"

	"weather-dash/internal/domain/entity"
	"weather-dash/internal/infra/storage"
	"weather-dash/pkg/log"
)

type favoriteUseCase struct {
	mu     sync.Mutex
	mirror *storage.Mirror[[]entity.FavoriteEntry]
	now    func() time.Time
}

// NewFavoriteUseCase creates the favorites store on top of a durable slot.
func NewFavoriteUseCase(slot storage.Slot) UseCase {
	return &favoriteUseCase{
		mirror: storage.NewMirror(slot, []entity.FavoriteEntry{}),
		now:    time.Now,
	}
}

func (uc *favoriteUseCase) List() []entity.FavoriteEntry {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.mirror.Get()
	out := make([]entity.FavoriteEntry, len(current))
	copy(out, current)
	return out
}

func (uc *favoriteUseCase) Add(name string, country string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.mirror.Get()
	for _, fav := range current {
		if strings.EqualFold(fav.Name, name) {
			log.Infow("City already in favorites", "city", name)
			return
		}
	}

	updated := append(append([]entity.FavoriteEntry{}, current...), entity.FavoriteEntry{
		Name:    name,
		Country: country,
		AddedAt: uc.now().UnixMilli(),
	})
	uc.mirror.Update(updated)
	log.Infow("Added city to favorites", "city", name)
}

func (uc *favoriteUseCase) Remove(name string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.mirror.Get()
	updated := make([]entity.FavoriteEntry, 0, len(current))
	for _, fav := range current {
		if !strings.EqualFold(fav.Name, name) {
			updated = append(updated, fav)
		}
	}

	if len(updated) == len(current) {
		return
	}
	uc.mirror.Update(updated)
	log.Infow("Removed city from favorites", "city", name)
}

func (uc *favoriteUseCase) IsFavorite(name string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, fav := range uc.mirror.Get() {
		if strings.EqualFold(fav.Name, name) {
			return true
		}
	}
	return false
}

func (uc *favoriteUseCase) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.mirror.Update([]entity.FavoriteEntry{})
	log.Info("Cleared all favorites")
}
