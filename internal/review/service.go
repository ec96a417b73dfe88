package review

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByProduct(productID int) ([]Review, error) {
	return s.repo.ListByProduct(productID)
}

func (s *Service) Create(productID int, in ReviewCreate) (Review, error) {
	return s.repo.Create(productID, in)
}
