// Package memory holds the most recently analyzed season for watch mode,
// so readers never observe a season mid-analysis.
package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/hindsight/internal/season"
)

type Repository struct {
	season    *season.Season
	updatedAt time.Time
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

// SaveSeason replaces the stored season. Only fully analyzed seasons
// should be saved.
func (r *Repository) SaveSeason(s *season.Season) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.season = s
	r.updatedAt = time.Now()
}

// GetSeason returns the latest analyzed season and when it was stored.
// The season is nil until the first save.
func (r *Repository) GetSeason() (*season.Season, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.season, r.updatedAt
}
