package history

// Service provides recent-view recording and lookup.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record upserts a view for the pair. Satisfies cart.ViewRecorder.
func (s *Service) Record(userID, productID int) error {
	return s.repo.Record(userID, productID)
}

func (s *Service) RecentProductIDs(userID, limit int) ([]int, error) {
	return s.repo.RecentProductIDs(userID, limit)
}
