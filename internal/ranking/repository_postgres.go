package ranking

import (
	"database/sql"
	"fmt"

	"github.com/lucystudio/shop-backend/internal/product"
)

// Repository lists products by descending like count.
type Repository interface {
	Top(limit int) ([]product.Product, error)
}

// PostgresRepository implements Repository using Postgres. Likes are stored
// as text, so the ordering casts them to integers to avoid lexicographic
// ranking ("9" beating "100").
type PostgresRepository struct {
	db *sql.DB
}

const topByLikesQuery = `
	SELECT id, brand_name, product_name, image_url, price::text, discount::text, likes, reviews, is_favorite, category, created_at
	FROM products
	ORDER BY COALESCE(NULLIF(likes, ''), '0')::int DESC, id
	LIMIT $1
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Top(limit int) ([]product.Product, error) {
	rows, err := r.db.Query(topByLikesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list product ranking: %w", err)
	}
	defer rows.Close()

	out := make([]product.Product, 0, limit)
	for rows.Next() {
		var (
			p        product.Product
			imageURL sql.NullString
			price    sql.NullString
			discount sql.NullString
			likes    sql.NullString
			reviews  sql.NullString
			category sql.NullString
		)
		if err := rows.Scan(
			&p.ID,
			&p.BrandName,
			&p.ProductName,
			&imageURL,
			&price,
			&discount,
			&likes,
			&reviews,
			&p.IsFavorite,
			&category,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.ImageURL = imageURL.String
		p.Price = price.String
		p.Discount = discount.String
		p.Likes = likes.String
		p.Reviews = reviews.String
		p.Category = category.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
