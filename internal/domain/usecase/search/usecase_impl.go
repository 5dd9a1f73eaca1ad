package search

import (
	"strings"
	"sync"
	"time"

	"weather-dash/internal/domain/entity"
	"weather-dash/internal/infra/storage"
	"weather-dash/pkg/log"
)

type searchUseCase struct {
	mu     sync.Mutex
	mirror *storage.Mirror[[]entity.RecentSearchEntry]
	now    func() time.Time
}

// NewSearchUseCase creates the recent-search store on top of a durable slot.
func NewSearchUseCase(slot storage.Slot) UseCase {
	return &searchUseCase{
		mirror: storage.NewMirror(slot, []entity.RecentSearchEntry{}),
		now:    time.Now,
	}
}

func (uc *searchUseCase) List() []entity.RecentSearchEntry {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.mirror.Get()
	out := make([]entity.RecentSearchEntry, len(current))
	copy(out, current)
	return out
}

func (uc *searchUseCase) AddSearch(city string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.mirror.Get()
	updated := make([]entity.RecentSearchEntry, 0, len(current)+1)
	updated = append(updated, entity.RecentSearchEntry{
		City:       city,
		SearchedAt: uc.now().UnixMilli(),
	})
	for _, entry := range current {
		if !strings.EqualFold(entry.City, city) {
			updated = append(updated, entry)
		}
	}
	if len(updated) > maxRecentSearches {
		updated = updated[:maxRecentSearches]
	}

	uc.mirror.Update(updated)
	log.Infow("Added city to recent searches", "city", city)
}

func (uc *searchUseCase) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.mirror.Update([]entity.RecentSearchEntry{})
	log.Info("Cleared search history")
}
