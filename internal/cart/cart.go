package cart

import (
	"time"

	"github.com/lucystudio/shop-backend/internal/product"
)

// Entry is a cart row joined with its product. Quantity is always positive:
// driving it to zero converts the entry into a view-history record.
type Entry struct {
	ID              int
	UserID          int
	ProductID       int
	Quantity        int
	SelectedOptions string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Product         product.Product
}
