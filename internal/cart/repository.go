package cart

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/lucystudio/shop-backend/internal/product"
)

var (
	ErrNotFound = errors.New("cart entry not found")
)

// ProductSource resolves product details for cart entries. Satisfied by the
// product repositories.
type ProductSource interface {
	GetByID(id int) (product.Product, error)
}

// ViewRecorder records that a user viewed a product. Satisfied by the
// view-history repositories.
type ViewRecorder interface {
	Record(userID, productID int) error
}

type Repository interface {
	// ListWithProducts returns entries joined with their products, newest
	// first. userID 0 disables the user filter.
	ListWithProducts(userID int) ([]Entry, error)
	// Get returns the entry for the (user, product) pair.
	Get(userID, productID int) (Entry, error)
	// Add inserts a new entry or atomically increments an existing one,
	// returning the resulting quantity.
	Add(userID, productID, qty int) (int, error)
	// SetQuantity updates an existing entry. Returns false when no entry
	// exists; absence is not an error.
	SetQuantity(userID, productID, qty int) (bool, error)
	// Remove deletes the entry unconditionally; removing a missing entry is
	// a no-op.
	Remove(userID, productID int) error
	// MoveToHistory deletes the entry and records a product view in its
	// place. Missing entries are a no-op.
	MoveToHistory(userID, productID int) error
}

// InMemoryRepository backs tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	entries  []Entry
	nextID   int
	products ProductSource
	views    ViewRecorder
}

func NewInMemoryRepository(products ProductSource, views ViewRecorder) *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, products: products, views: views}
}

func (r *InMemoryRepository) ListWithProducts(userID int) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if userID != 0 && e.UserID != userID {
			continue
		}
		if r.products != nil {
			p, err := r.products.GetByID(e.ProductID)
			if err != nil {
				continue
			}
			e.Product = p
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) Get(userID, productID int) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (r *InMemoryRepository) Add(userID, productID, qty int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for i := range r.entries {
		if r.entries[i].UserID == userID && r.entries[i].ProductID == productID {
			r.entries[i].Quantity += qty
			r.entries[i].UpdatedAt = now
			return r.entries[i].Quantity, nil
		}
	}
	r.entries = append(r.entries, Entry{
		ID:        r.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	})
	r.nextID++
	return qty, nil
}

func (r *InMemoryRepository) SetQuantity(userID, productID, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].UserID == userID && r.entries[i].ProductID == productID {
			r.entries[i].Quantity = qty
			r.entries[i].UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].UserID == userID && r.entries[i].ProductID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) MoveToHistory(userID, productID int) error {
	r.mu.Lock()
	found := false
	for i := range r.entries {
		if r.entries[i].UserID == userID && r.entries[i].ProductID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			found = true
			break
		}
	}
	r.mu.Unlock()
	if found && r.views != nil {
		return r.views.Record(userID, productID)
	}
	return nil
}
