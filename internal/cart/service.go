package cart

import "errors"

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(userID int) ([]Entry, error) {
	return s.repo.ListWithProducts(userID)
}

// Get returns the entry for the pair plus whether one exists.
func (s *Service) Get(userID, productID int) (Entry, bool, error) {
	e, err := s.repo.Get(userID, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	return e, true, nil
}

// Add inserts or increments the entry and returns the resulting quantity.
func (s *Service) Add(userID, productID, qty int) (int, error) {
	if qty <= 0 {
		qty = 1
	}
	return s.repo.Add(userID, productID, qty)
}

// Set updates the quantity of an existing entry. A nonexistent pair is a
// silent no-op. Quantity zero (or less) retires the entry into view history.
func (s *Service) Set(userID, productID, qty int) error {
	if qty <= 0 {
		return s.repo.MoveToHistory(userID, productID)
	}
	_, err := s.repo.SetQuantity(userID, productID, qty)
	return err
}

// Remove deletes the entry; removing twice yields the same end state.
func (s *Service) Remove(userID, productID int) error {
	return s.repo.Remove(userID, productID)
}
