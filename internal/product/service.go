package product

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(opts ListOptions) ([]Product, error) {
	return s.repo.List(opts)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Favorites() ([]Product, error) {
	return s.repo.Favorites()
}

// Search matches the query against product and brand names, case-insensitive.
// A blank query short-circuits to an empty result without touching storage.
func (s *Service) Search(q string) ([]Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Product{}, nil
	}
	return s.repo.Search(q)
}

func (s *Service) Latest(limit int) ([]Product, error) {
	return s.repo.Latest(limit)
}

func (s *Service) ToggleFavorite(id int) (FavoriteState, error) {
	return s.repo.ToggleFavorite(id)
}

func (s *Service) Create(p ProductCreate) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p ProductUpdate) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
