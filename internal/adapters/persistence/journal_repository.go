package persistence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// JournalEntry is one line of the expedition journal
type JournalEntry struct {
	ID        int
	Timestamp time.Time
	Level     string
	Message   string
}

// GormJournalRepository persists the expedition journal. Repeated messages
// within the deduplication window are dropped so a retried command does not
// flood the journal.
type GormJournalRepository struct {
	db    *gorm.DB
	clock shared.Clock

	dedupCache   map[string]time.Time
	dedupMu      sync.Mutex
	dedupWindow  time.Duration
	dedupMaxSize int
}

// NewGormJournalRepository creates a new journal repository.
// If clock is nil, uses RealClock.
func NewGormJournalRepository(db *gorm.DB, clock shared.Clock) *GormJournalRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormJournalRepository{
		db:           db,
		clock:        clock,
		dedupCache:   make(map[string]time.Time),
		dedupWindow:  60 * time.Second,
		dedupMaxSize: 10000,
	}
}

// Append writes a journal line, skipping duplicates inside the window
func (r *GormJournalRepository) Append(ctx context.Context, level, message string) error {
	now := r.clock.Now()

	r.dedupMu.Lock()
	if lastLogged, exists := r.dedupCache[message]; exists {
		if now.Sub(lastLogged) < r.dedupWindow {
			r.dedupMu.Unlock()
			return nil
		}
	}
	if len(r.dedupCache) >= r.dedupMaxSize {
		r.cleanupDedupCache(now)
	}
	r.dedupCache[message] = now
	r.dedupMu.Unlock()

	entry := &JournalModel{
		Timestamp: now,
		Level:     level,
		Message:   message,
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// cleanupDedupCache removes entries older than the window.
// Must be called while holding dedupMu.
func (r *GormJournalRepository) cleanupDedupCache(now time.Time) {
	cutoff := now.Add(-r.dedupWindow)
	for key, timestamp := range r.dedupCache {
		if timestamp.Before(cutoff) {
			delete(r.dedupCache, key)
		}
	}
}

// Recent retrieves the newest journal lines, optionally filtered by level
func (r *GormJournalRepository) Recent(ctx context.Context, limit int, level *string) ([]JournalEntry, error) {
	query := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Limit(limit)
	if level != nil {
		query = query.Where("level = ?", *level)
	}

	var models []JournalModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}

	entries := make([]JournalEntry, 0, len(models))
	for _, model := range models {
		entries = append(entries, JournalEntry{
			ID:        model.ID,
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
		})
	}
	return entries, nil
}
