package history

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	recordViewQuery = `
		INSERT INTO view_history (user_id, product_id, viewed_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, product_id) DO UPDATE SET viewed_at = now()
	`
	recentProductIDsQuery = `
		SELECT product_id
		FROM view_history
		WHERE user_id = $1
		ORDER BY viewed_at DESC, id DESC
		LIMIT $2
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(userID, productID int) error {
	if _, err := r.db.Exec(recordViewQuery, userID, productID); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecentProductIDs(userID, limit int) ([]int, error) {
	rows, err := r.db.Query(recentProductIDsQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent views: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
