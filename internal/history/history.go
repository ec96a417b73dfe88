// Package history tracks which products a user recently viewed.
package history

import "time"

// ViewHistoryEntry records a single (user, product) view. Repeated views
// refresh ViewedAt, the recency signal for the recent-views listing.
type ViewHistoryEntry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}
