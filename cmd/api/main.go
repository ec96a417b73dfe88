package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/lucystudio/shop-backend/internal/cart"
	"github.com/lucystudio/shop-backend/internal/config"
	"github.com/lucystudio/shop-backend/internal/history"
	"github.com/lucystudio/shop-backend/internal/product"
	"github.com/lucystudio/shop-backend/internal/qa"
	"github.com/lucystudio/shop-backend/internal/ranking"
	"github.com/lucystudio/shop-backend/internal/review"
	"github.com/lucystudio/shop-backend/internal/search"
	"github.com/lucystudio/shop-backend/internal/unified"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)
	if cfg.JWTSecret != "" {
		app.Use(jwtware.New(jwtware.Config{
			SigningKey: []byte(cfg.JWTSecret),
			// all storefront endpoints are public; tokens only enrich the
			// request with a user identity when a client sends one
			Filter: func(c *fiber.Ctx) bool {
				return c.Get(fiber.HeaderAuthorization) == ""
			},
		}))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Shop API server is up and running!", "status": "healthy"})
	})

	formatter := product.NewFormatter(cfg.PublicBaseURL)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService, formatter)

	cartService := cart.NewService(cart.NewPostgresRepository(db))
	cartHandler := cart.NewHandler(cartService, productService, formatter)

	historyService := history.NewService(history.NewPostgresRepository(db))
	historyHandler := history.NewHandler(historyService, productService, formatter)

	rankingHandler := ranking.NewHandler(ranking.NewService(ranking.NewPostgresRepository(db)), formatter)
	searchHandler := search.NewHandler(search.NewStaticTermProvider(nil))
	unifiedHandler := unified.NewHandler(productService, cartService, formatter)

	qaHandler := qa.NewHandler(qa.NewService(qa.NewPostgresRepository(db)))
	reviewHandler := review.NewHandler(review.NewService(review.NewPostgresRepository(db)))

	productHandler.RegisterPublicRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	historyHandler.RegisterPublicRoutes(app)
	rankingHandler.RegisterPublicRoutes(app)
	searchHandler.RegisterPublicRoutes(app)
	unifiedHandler.RegisterPublicRoutes(app)
	qaHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	reqID := uuid.NewString()
	c.Locals("request_id", reqID)
	err := c.Next()
	log.Printf("req=%s %s %s status=%d took=%s", reqID[:8], c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// ensureSchema bootstraps the tables the façade reads and writes. Statements
// are idempotent so restarts against an existing database are safe.
func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			brand_name TEXT NOT NULL,
			product_name TEXT NOT NULL,
			image_url TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			discount NUMERIC NOT NULL DEFAULT 0,
			likes TEXT NOT NULL DEFAULT '0',
			reviews TEXT,
			is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
			category TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL,
			selected_options TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS view_history (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			viewed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS qa (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT,
			user_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			answered_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL,
			user_name TEXT NOT NULL,
			rating INT NOT NULL,
			content TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
