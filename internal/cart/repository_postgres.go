package cart

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	cartJoinColumns = `
		ci.id, ci.user_id, ci.product_id, ci.quantity, ci.selected_options, ci.created_at, ci.updated_at,
		p.id, p.brand_name, p.product_name, p.image_url, p.price::text, p.discount::text, p.likes, p.reviews, p.is_favorite, p.category, p.created_at
	`
	getEntryQuery = `
		SELECT id, user_id, product_id, quantity, selected_options, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`
	// Upsert keyed on (user_id, product_id) so concurrent adds cannot lose
	// an increment.
	addEntryQuery = `
		INSERT INTO cart_items (user_id, product_id, quantity, selected_options, created_at, updated_at)
		VALUES ($1, $2, $3, '', now(), now())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING quantity
	`
	setQuantityQuery = `
		UPDATE cart_items
		SET quantity = $3, updated_at = now()
		WHERE user_id = $1 AND product_id = $2
	`
	removeEntryQuery = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	// The delete and the history insert run as one statement so an entry can
	// never be lost between the two steps.
	moveToHistoryQuery = `
		WITH removed AS (
			DELETE FROM cart_items
			WHERE user_id = $1 AND product_id = $2
			RETURNING user_id, product_id
		)
		INSERT INTO view_history (user_id, product_id, viewed_at)
		SELECT user_id, product_id, now() FROM removed
		ON CONFLICT (user_id, product_id) DO UPDATE SET viewed_at = now()
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListWithProducts(userID int) ([]Entry, error) {
	q := `SELECT ` + cartJoinColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.quantity > 0`
	args := make([]any, 0, 1)
	if userID != 0 {
		args = append(args, userID)
		q += ` AND ci.user_id = $1`
	}
	q += ` ORDER BY ci.created_at DESC, ci.id DESC`

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list cart entries: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		e, err := scanEntryWithProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Get(userID, productID int) (Entry, error) {
	var (
		e       Entry
		options sql.NullString
	)
	err := r.db.QueryRow(getEntryQuery, userID, productID).Scan(
		&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &options, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("get cart entry: %w", err)
	}
	e.SelectedOptions = options.String
	return e, nil
}

func (r *PostgresRepository) Add(userID, productID, qty int) (int, error) {
	var quantity int
	if err := r.db.QueryRow(addEntryQuery, userID, productID, qty).Scan(&quantity); err != nil {
		return 0, fmt.Errorf("add cart entry: %w", err)
	}
	return quantity, nil
}

func (r *PostgresRepository) SetQuantity(userID, productID, qty int) (bool, error) {
	result, err := r.db.Exec(setQuantityQuery, userID, productID, qty)
	if err != nil {
		return false, fmt.Errorf("set cart quantity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	if _, err := r.db.Exec(removeEntryQuery, userID, productID); err != nil {
		return fmt.Errorf("remove cart entry: %w", err)
	}
	return nil
}

func (r *PostgresRepository) MoveToHistory(userID, productID int) error {
	if _, err := r.db.Exec(moveToHistoryQuery, userID, productID); err != nil {
		return fmt.Errorf("move cart entry to history: %w", err)
	}
	return nil
}

func scanEntryWithProduct(rows *sql.Rows) (Entry, error) {
	var (
		e        Entry
		options  sql.NullString
		imageURL sql.NullString
		price    sql.NullString
		discount sql.NullString
		likes    sql.NullString
		reviews  sql.NullString
		category sql.NullString
	)
	if err := rows.Scan(
		&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &options, &e.CreatedAt, &e.UpdatedAt,
		&e.Product.ID,
		&e.Product.BrandName,
		&e.Product.ProductName,
		&imageURL,
		&price,
		&discount,
		&likes,
		&reviews,
		&e.Product.IsFavorite,
		&category,
		&e.Product.CreatedAt,
	); err != nil {
		return Entry{}, err
	}
	e.SelectedOptions = options.String
	e.Product.ImageURL = imageURL.String
	e.Product.Price = price.String
	e.Product.Discount = discount.String
	e.Product.Likes = likes.String
	e.Product.Reviews = reviews.String
	e.Product.Category = category.String
	return e, nil
}
