package product

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

type envelope struct {
	Body struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	} `json:"body"`
}

func decodeEnvelope(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func seedProducts() []Product {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: 1, BrandName: "Nike", ProductName: "Air Zoom", Price: "89000", Discount: "10", Likes: "5", Category: "shoes", CreatedAt: base},
		{ID: 2, BrandName: "Adidas", ProductName: "Samba", Price: "99000", Discount: "0", Likes: "12", Category: "shoes", CreatedAt: base.Add(time.Hour)},
		{ID: 3, BrandName: "Levis", ProductName: "501 Jeans", Price: "120000", Discount: "20", Likes: "2", IsFavorite: true, Category: "pants", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func makeProductApp(repo Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(repo), NewFormatter("http://localhost:8001"))
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestGetProducts_Pagination(t *testing.T) {
	app := makeProductApp(NewInMemoryRepository(seedProducts()))

	req := httptest.NewRequest("GET", "/products?offset=0&limit=2", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	env := decodeEnvelope(t, res.Body)
	if env.Body.Code != "200" {
		t.Fatalf("expected body code 200, got %q", env.Body.Code)
	}
	var items []Formatted
	if err := json.Unmarshal(env.Body.Data, &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// newest first
	if items[0].ID != 3 || items[1].ID != 2 {
		t.Fatalf("expected ids [3 2], got [%d %d]", items[0].ID, items[1].ID)
	}
	if items[0].Price != "120,000원" {
		t.Fatalf("expected formatted price, got %q", items[0].Price)
	}
}

func TestGetProducts_CategoryFilter(t *testing.T) {
	app := makeProductApp(NewInMemoryRepository(seedProducts()))

	req := httptest.NewRequest("GET", "/products?category=pants", nil)
	res, _ := app.Test(req)
	env := decodeEnvelope(t, res.Body)
	var items []Formatted
	if err := json.Unmarshal(env.Body.Data, &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Fatalf("expected only product 3, got %+v", items)
	}

	// sentinel "all" disables the filter
	req2 := httptest.NewRequest("GET", "/products?category=all", nil)
	res2, _ := app.Test(req2)
	env2 := decodeEnvelope(t, res2.Body)
	var all []Formatted
	if err := json.Unmarshal(env2.Body.Data, &all); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 items with category=all, got %d", len(all))
	}
}

func TestGetAllProducts(t *testing.T) {
	app := makeProductApp(NewInMemoryRepository(seedProducts()))

	res, _ := app.Test(httptest.NewRequest("GET", "/products/all", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res.Body)
	var items []Formatted
	if err := json.Unmarshal(env.Body.Data, &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected all 3 products, got %d", len(items))
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := makeProductApp(NewInMemoryRepository(seedProducts()))

	res, _ := app.Test(httptest.NewRequest("GET", "/products/999", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res.Body)
	if env.Body.Code != "404" {
		t.Fatalf("expected body code 404, got %q", env.Body.Code)
	}
	if string(env.Body.Data) != "null" {
		t.Fatalf("expected null data on the error path, got %s", env.Body.Data)
	}
}

// countingRepo records how often Search reaches storage.
type countingRepo struct {
	*InMemoryRepository
	searchCalls int
}

func (r *countingRepo) Search(q string) ([]Product, error) {
	r.searchCalls++
	return r.InMemoryRepository.Search(q)
}

func TestSearchProducts(t *testing.T) {
	repo := &countingRepo{InMemoryRepository: NewInMemoryRepository(seedProducts())}
	app := makeProductApp(repo)

	// blank query short-circuits without touching storage
	res, _ := app.Test(httptest.NewRequest("GET", "/products-search?q=%20%20", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for blank query, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res.Body)
	if string(env.Body.Data) != "[]" {
		t.Fatalf("expected empty list for blank query, got %s", env.Body.Data)
	}
	if repo.searchCalls != 0 {
		t.Fatalf("blank query must not query storage, got %d calls", repo.searchCalls)
	}

	// case-insensitive match on brand name
	res2, _ := app.Test(httptest.NewRequest("GET", "/products-search?q=nIkE", nil))
	env2 := decodeEnvelope(t, res2.Body)
	var items []Formatted
	if err := json.Unmarshal(env2.Body.Data, &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(items) != 1 || items[0].BrandName != "Nike" {
		t.Fatalf("expected the Nike product, got %+v", items)
	}
	if repo.searchCalls != 1 {
		t.Fatalf("expected 1 storage query, got %d", repo.searchCalls)
	}
}

func TestGetFavoriteProducts(t *testing.T) {
	app := makeProductApp(NewInMemoryRepository(seedProducts()))

	res, _ := app.Test(httptest.NewRequest("GET", "/products-favorites", nil))
	env := decodeEnvelope(t, res.Body)
	var items []Formatted
	if err := json.Unmarshal(env.Body.Data, &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Fatalf("expected only the favorite product, got %+v", items)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	app := makeProductApp(NewInMemoryRepository(nil))

	req := httptest.NewRequest("POST", "/products", strings.NewReader(`{"price":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	for _, field := range []string{"product_name", "brand_name", "price"} {
		if !strings.Contains(string(b), field) {
			t.Fatalf("expected validation error for %s, got %s", field, string(b))
		}
	}
}

func TestCreateAndUpdateProduct(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeProductApp(repo)

	req := httptest.NewRequest("POST", "/products", strings.NewReader(
		`{"brand_name":"Nike","product_name":"Air Max","price":"150000","discount":"5","category":"shoes"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	// partial update keeps unset fields
	req2 := httptest.NewRequest("PUT", "/products/1", strings.NewReader(`{"price":"140000"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	stored, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("product missing after update: %v", err)
	}
	if stored.Price != "140000" || stored.ProductName != "Air Max" {
		t.Fatalf("partial update went wrong: %+v", stored)
	}

	res3, _ := app.Test(httptest.NewRequest("DELETE", "/products/1", nil))
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", res3.StatusCode)
	}
	if _, err := repo.GetByID(1); err == nil {
		t.Fatalf("expected product gone after delete")
	}
}
