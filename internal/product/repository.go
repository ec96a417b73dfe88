package product

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("product not found")
)

// ListOptions control catalog listing. An empty or "all" category disables
// filtering; Limit <= 0 disables paging.
type ListOptions struct {
	Category string
	Offset   int
	Limit    int
}

type Repository interface {
	List(opts ListOptions) ([]Product, error)
	GetByID(id int) (Product, error)
	// ListByIDs returns the products for the given ids, preserving input order.
	ListByIDs(ids []int) ([]Product, error)
	Favorites() ([]Product, error)
	Search(q string) ([]Product, error)
	Latest(limit int) ([]Product, error)
	// ToggleFavorite flips the favorite flag and adjusts likes by +1/-1,
	// clamped at zero, in a single atomic step.
	ToggleFavorite(id int) (FavoriteState, error)
	Create(p ProductCreate) (Product, error)
	Update(id int, p ProductUpdate) (Product, error)
	Delete(id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and local seeding.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	nextID  int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
		nextID:  1,
	}
	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

// byCreatedDesc orders newest first, breaking ties on id.
func byCreatedDesc(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID > products[j].ID
		}
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

func (r *InMemoryRepository) List(opts ListOptions) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		if opts.Category != "" && opts.Category != CategoryAll && p.Category != opts.Category {
			continue
		}
		out = append(out, p)
	}
	byCreatedDesc(out)

	if opts.Offset >= len(out) {
		return []Product{}, nil
	}
	out = out[opts.Offset:]
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		for _, p := range r.storage {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Favorites() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.IsFavorite {
			out = append(out, p)
		}
	}
	byCreatedDesc(out)
	return out, nil
}

func (r *InMemoryRepository) Search(q string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(q)
	out := make([]Product, 0)
	for _, p := range r.storage {
		if strings.Contains(strings.ToLower(p.ProductName), needle) ||
			strings.Contains(strings.ToLower(p.BrandName), needle) {
			out = append(out, p)
		}
	}
	byCreatedDesc(out)
	return out, nil
}

func (r *InMemoryRepository) Latest(limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	byCreatedDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) ToggleFavorite(id int) (FavoriteState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID != id {
			continue
		}
		p := &r.storage[i]
		likes := p.LikesCount()
		if p.IsFavorite {
			likes--
		} else {
			likes++
		}
		if likes < 0 {
			likes = 0
		}
		p.IsFavorite = !p.IsFavorite
		p.Likes = strconv.Itoa(likes)
		return FavoriteState{IsFavorite: p.IsFavorite, Likes: likes}, nil
	}
	return FavoriteState{}, ErrNotFound
}

func (r *InMemoryRepository) Create(in ProductCreate) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := Product{
		ID:          r.nextID,
		BrandName:   in.BrandName,
		ProductName: in.ProductName,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		Discount:    in.Discount,
		Likes:       in.Likes,
		Reviews:     in.Reviews,
		IsFavorite:  in.IsFavorite,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}
	r.nextID++
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, in ProductUpdate) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID != id {
			continue
		}
		p := &r.storage[i]
		if in.BrandName != nil {
			p.BrandName = *in.BrandName
		}
		if in.ProductName != nil {
			p.ProductName = *in.ProductName
		}
		if in.ImageURL != nil {
			p.ImageURL = *in.ImageURL
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Discount != nil {
			p.Discount = *in.Discount
		}
		if in.Likes != nil {
			p.Likes = *in.Likes
		}
		if in.Reviews != nil {
			p.Reviews = *in.Reviews
		}
		if in.IsFavorite != nil {
			p.IsFavorite = *in.IsFavorite
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		return *p, nil
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
