package review

import (
	"sync"
	"time"
)

type Repository interface {
	ListByProduct(productID int) ([]Review, error)
	Create(productID int, in ReviewCreate) (Review, error)
}

// InMemoryRepository backs tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Review
	nextID  int
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	r := &InMemoryRepository{storage: append([]Review(nil), seed...), nextID: 1}
	for _, rev := range seed {
		if rev.ID >= r.nextID {
			r.nextID = rev.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) ListByProduct(productID int) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Review, 0)
	for _, rev := range r.storage {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(productID int, in ReviewCreate) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev := Review{
		ID:        r.nextID,
		ProductID: productID,
		UserName:  in.UserName,
		Rating:    in.Rating,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.storage = append(r.storage, rev)
	return rev, nil
}
