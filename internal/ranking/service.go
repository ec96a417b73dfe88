package ranking

import "github.com/lucystudio/shop-backend/internal/product"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Top returns the ranking board, capped at Size.
func (s *Service) Top() ([]product.Product, error) {
	return s.repo.Top(Size)
}
