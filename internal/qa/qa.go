package qa

import "time"

// QA is a product question with an optional seller answer.
type QA struct {
	ID         int        `json:"id"`
	ProductID  int        `json:"product_id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	UserName   string     `json:"user_name"`
	CreatedAt  time.Time  `json:"created_at"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// QACreate is the payload for posting a question. Answer and answered_at are
// filled later by the seller.
type QACreate struct {
	Question string `json:"question"`
	UserName string `json:"user_name"`
}
