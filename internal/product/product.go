package product

import (
	"strconv"
	"strings"
	"time"
)

// CategoryAll is the sentinel category value that disables category
// filtering on listing endpoints.
const CategoryAll = "all"

// Product maps to the `products` table. Price, discount and likes are kept
// as strings: the store persists likes as text and clients historically sent
// numeric fields either way, so parsing happens at the formatting boundary.
type Product struct {
	ID          int       `json:"id"`
	BrandName   string    `json:"brand_name"`
	ProductName string    `json:"product_name"`
	ImageURL    string    `json:"image_url"`
	Price       string    `json:"price"`
	Discount    string    `json:"discount"`
	Likes       string    `json:"likes"`
	Reviews     string    `json:"reviews"`
	IsFavorite  bool      `json:"is_favorite"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// LikesCount parses the string-encoded like counter, defaulting to 0.
func (p Product) LikesCount() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.Likes))
	if err != nil {
		return 0
	}
	return n
}

// ProductCreate is the payload for catalog inserts.
type ProductCreate struct {
	BrandName   string `json:"brand_name"`
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url"`
	Price       string `json:"price"`
	Discount    string `json:"discount"`
	Likes       string `json:"likes"`
	Reviews     string `json:"reviews"`
	IsFavorite  bool   `json:"is_favorite"`
	Category    string `json:"category"`
}

// ProductUpdate is the partial payload for catalog updates. Nil fields keep
// the stored value.
type ProductUpdate struct {
	BrandName   *string `json:"brand_name,omitempty"`
	ProductName *string `json:"product_name,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Price       *string `json:"price,omitempty"`
	Discount    *string `json:"discount,omitempty"`
	Likes       *string `json:"likes,omitempty"`
	Reviews     *string `json:"reviews,omitempty"`
	IsFavorite  *bool   `json:"is_favorite,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// FavoriteState is the post-toggle favorite flag and like count.
type FavoriteState struct {
	IsFavorite bool `json:"is_favorite"`
	Likes      int  `json:"likes"`
}
