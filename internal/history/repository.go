package history

import (
	"sort"
	"sync"
	"time"
)

type Repository interface {
	// Record upserts a view for the pair, refreshing its recency.
	Record(userID, productID int) error
	// RecentProductIDs returns product ids for the user, most recent first.
	RecentProductIDs(userID, limit int) ([]int, error)
}

// InMemoryRepository backs tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []ViewHistoryEntry
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Record(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for i := range r.entries {
		if r.entries[i].UserID == userID && r.entries[i].ProductID == productID {
			r.entries[i].ViewedAt = now
			return nil
		}
	}
	r.entries = append(r.entries, ViewHistoryEntry{
		ID:        r.nextID,
		UserID:    userID,
		ProductID: productID,
		ViewedAt:  now,
	})
	r.nextID++
	return nil
}

func (r *InMemoryRepository) RecentProductIDs(userID, limit int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]ViewHistoryEntry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].ViewedAt.Equal(matched[j].ViewedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].ViewedAt.After(matched[j].ViewedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	ids := make([]int, 0, len(matched))
	for _, e := range matched {
		ids = append(ids, e.ProductID)
	}
	return ids, nil
}
