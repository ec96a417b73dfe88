package review

import "time"

// Review is a product review with a 1..5 star rating.
type Review struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewCreate is the payload for posting a review.
type ReviewCreate struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
}
