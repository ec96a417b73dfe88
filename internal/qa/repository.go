package qa

import (
	"sync"
	"time"
)

type Repository interface {
	ListByProduct(productID int) ([]QA, error)
	Create(productID int, in QACreate) (QA, error)
}

// InMemoryRepository backs tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []QA
	nextID  int
}

func NewInMemoryRepository(seed []QA) *InMemoryRepository {
	r := &InMemoryRepository{storage: append([]QA(nil), seed...), nextID: 1}
	for _, q := range seed {
		if q.ID >= r.nextID {
			r.nextID = q.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) ListByProduct(productID int) ([]QA, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]QA, 0)
	for _, q := range r.storage {
		if q.ProductID == productID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(productID int, in QACreate) (QA, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := QA{
		ID:        r.nextID,
		ProductID: productID,
		Question:  in.Question,
		UserName:  in.UserName,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.storage = append(r.storage, q)
	return q, nil
}
