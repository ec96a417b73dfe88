package product

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

// Numeric columns are selected as text so that rows written with either
// numeric or string payloads scan uniformly.
const productColumns = `id, brand_name, product_name, image_url, price::text, discount::text, likes, reviews, is_favorite, category, created_at`

const (
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	listByIDsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = ANY($1::int[])
		ORDER BY array_position($1::int[], id)
	`
	favoritesQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_favorite = TRUE
		ORDER BY created_at DESC, id DESC
	`
	searchQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_name ILIKE $1 OR brand_name ILIKE $1
		ORDER BY created_at DESC, id DESC
	`
	latestQuery = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	// Single-statement toggle: flips the flag and adjusts likes in one round
	// trip so concurrent toggles cannot lose updates. Likes clamp at zero.
	toggleFavoriteQuery = `
		UPDATE products
		SET is_favorite = NOT is_favorite,
			likes = GREATEST(0, COALESCE(NULLIF(likes, ''), '0')::int + CASE WHEN is_favorite THEN -1 ELSE 1 END)::text
		WHERE id = $1
		RETURNING is_favorite, COALESCE(NULLIF(likes, ''), '0')::int
	`
	insertProductQuery = `
		INSERT INTO products (brand_name, product_name, image_url, price, discount, likes, reviews, is_favorite, category, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	updateProductQuery = `
		UPDATE products
		SET brand_name = COALESCE($1, brand_name),
			product_name = COALESCE($2, product_name),
			image_url = COALESCE($3, image_url),
			price = COALESCE($4::numeric, price),
			discount = COALESCE($5::numeric, discount),
			likes = COALESCE($6, likes),
			reviews = COALESCE($7, reviews),
			is_favorite = COALESCE($8, is_favorite),
			category = COALESCE($9, category)
		WHERE id = $10
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(opts ListOptions) ([]Product, error) {
	q := `SELECT ` + productColumns + ` FROM products`
	args := make([]any, 0, 3)
	if opts.Category != "" && opts.Category != CategoryAll {
		args = append(args, opts.Category)
		q += fmt.Sprintf(` WHERE category = $%d`, len(args))
	}
	q += ` ORDER BY created_at DESC, id DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		q += fmt.Sprintf(` LIMIT $%d`, len(args))
		args = append(args, opts.Offset)
		q += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(listByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list products by ids: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) Favorites() ([]Product, error) {
	rows, err := r.db.Query(favoritesQuery)
	if err != nil {
		return nil, fmt.Errorf("list favorite products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) Search(q string) ([]Product, error) {
	rows, err := r.db.Query(searchQuery, "%"+q+"%")
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) Latest(limit int) ([]Product, error) {
	rows, err := r.db.Query(latestQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) ToggleFavorite(id int) (FavoriteState, error) {
	var state FavoriteState
	err := r.db.QueryRow(toggleFavoriteQuery, id).Scan(&state.IsFavorite, &state.Likes)
	if err != nil {
		if err == sql.ErrNoRows {
			return FavoriteState{}, ErrNotFound
		}
		return FavoriteState{}, fmt.Errorf("toggle favorite %d: %w", id, err)
	}
	return state, nil
}

func (r *PostgresRepository) Create(in ProductCreate) (Product, error) {
	p := Product{
		BrandName:   in.BrandName,
		ProductName: in.ProductName,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		Discount:    in.Discount,
		Likes:       in.Likes,
		Reviews:     in.Reviews,
		IsFavorite:  in.IsFavorite,
		Category:    in.Category,
	}
	err := r.db.QueryRow(
		insertProductQuery,
		in.BrandName,
		in.ProductName,
		in.ImageURL,
		nullIfEmpty(in.Price, "0"),
		nullIfEmpty(in.Discount, "0"),
		nullIfEmpty(in.Likes, "0"),
		in.Reviews,
		in.IsFavorite,
		in.Category,
		time.Now().UTC(),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	if p.Price == "" {
		p.Price = "0"
	}
	if p.Discount == "" {
		p.Discount = "0"
	}
	if p.Likes == "" {
		p.Likes = "0"
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, in ProductUpdate) (Product, error) {
	result, err := r.db.Exec(
		updateProductQuery,
		in.BrandName,
		in.ProductName,
		in.ImageURL,
		in.Price,
		in.Discount,
		in.Likes,
		in.Reviews,
		in.IsFavorite,
		in.Category,
		id,
	)
	if err != nil {
		return Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		imageURL sql.NullString
		price    sql.NullString
		discount sql.NullString
		likes    sql.NullString
		reviews  sql.NullString
		category sql.NullString
	)
	if err := scanner.Scan(
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
		return Product{}, err
	}
	p.ImageURL = imageURL.String
	p.Price = price.String
	p.Discount = discount.String
	p.Likes = likes.String
	p.Reviews = reviews.String
	p.Category = category.String
	if p.Price == "" {
		p.Price = "0"
	}
	if p.Discount == "" {
		p.Discount = "0"
	}
	if p.Likes == "" {
		p.Likes = "0"
	}
	return p, nil
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
