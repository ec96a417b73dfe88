package review

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listByProductQuery = `
		SELECT id, product_id, user_name, rating, content, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
	`
	insertQuery = `
		INSERT INTO reviews (product_id, user_name, rating, content, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Review, error) {
	rows, err := r.db.Query(listByProductQuery, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var (
			rev     Review
			content sql.NullString
		)
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserName, &rev.Rating, &content, &rev.CreatedAt); err != nil {
			return nil, err
		}
		rev.Content = content.String
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Create(productID int, in ReviewCreate) (Review, error) {
	rev := Review{
		ProductID: productID,
		UserName:  in.UserName,
		Rating:    in.Rating,
		Content:   in.Content,
	}
	if err := r.db.QueryRow(insertQuery, productID, in.UserName, in.Rating, in.Content).Scan(&rev.ID, &rev.CreatedAt); err != nil {
		return Review{}, fmt.Errorf("create review: %w", err)
	}
	return rev, nil
}
