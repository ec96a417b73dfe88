package qa

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listByProductQuery = `
		SELECT id, product_id, question, answer, user_name, created_at, answered_at
		FROM qa
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
	`
	insertQuery = `
		INSERT INTO qa (product_id, question, answer, user_name, created_at)
		VALUES ($1, $2, '', $3, now())
		RETURNING id, created_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByProduct(productID int) ([]QA, error) {
	rows, err := r.db.Query(listByProductQuery, productID)
	if err != nil {
		return nil, fmt.Errorf("list qa: %w", err)
	}
	defer rows.Close()

	out := make([]QA, 0)
	for rows.Next() {
		var (
			q          QA
			answer     sql.NullString
			answeredAt sql.NullTime
		)
		if err := rows.Scan(&q.ID, &q.ProductID, &q.Question, &answer, &q.UserName, &q.CreatedAt, &answeredAt); err != nil {
			return nil, err
		}
		q.Answer = answer.String
		if answeredAt.Valid {
			t := answeredAt.Time
			q.AnsweredAt = &t
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Create(productID int, in QACreate) (QA, error) {
	q := QA{
		ProductID: productID,
		Question:  in.Question,
		UserName:  in.UserName,
	}
	if err := r.db.QueryRow(insertQuery, productID, in.Question, in.UserName).Scan(&q.ID, &q.CreatedAt); err != nil {
		return QA{}, fmt.Errorf("create qa: %w", err)
	}
	return q, nil
}
