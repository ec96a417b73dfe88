package history

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lucystudio/shop-backend/internal/product"
)

type envelope struct {
	Body struct {
		Code string          `json:"code"`
		Data json.RawMessage `json:"data"`
	} `json:"body"`
}

func newHistoryApp() (*fiber.App, *InMemoryRepository) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	products := product.NewInMemoryRepository([]product.Product{
		{ID: 1, ProductName: "Air Zoom", Price: "89000", CreatedAt: base},
		{ID: 2, ProductName: "Samba", Price: "99000", CreatedAt: base.Add(time.Hour)},
		{ID: 3, ProductName: "501 Jeans", Price: "120000", CreatedAt: base.Add(2 * time.Hour)},
	})
	repo := NewInMemoryRepository()

	app := fiber.New()
	h := NewHandler(NewService(repo), product.NewService(products), product.NewFormatter("http://localhost:8001"))
	h.RegisterPublicRoutes(app)
	return app, repo
}

func fetchIDs(t *testing.T, app *fiber.App, url string) []int {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	var items []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(env.Body.Data, &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestRecentViews_FallbackToLatest(t *testing.T) {
	app, _ := newHistoryApp()

	// no history yet: newest products are served instead
	ids := fetchIDs(t, app, "/products-recent-views")
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 2 || ids[2] != 1 {
		t.Fatalf("expected newest-first fallback [3 2 1], got %v", ids)
	}
}

func TestRecentViews_OrderedByRecency(t *testing.T) {
	app, repo := newHistoryApp()

	for _, id := range []int{1, 2} {
		if err := repo.Record(1, id); err != nil {
			t.Fatalf("record failed: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	// viewing product 1 again moves it back to the front
	time.Sleep(time.Millisecond)
	if err := repo.Record(1, 1); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	ids := fetchIDs(t, app, "/products-recent-views")
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("expected [1 2], got %v", ids)
	}
}

func TestRecentViews_ScopedPerUser(t *testing.T) {
	app, repo := newHistoryApp()

	if err := repo.Record(7, 2); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	ids := fetchIDs(t, app, "/products-recent-views?user_id=7")
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("expected user 7 history [2], got %v", ids)
	}
}

func TestRecentViews_Limit(t *testing.T) {
	app, repo := newHistoryApp()

	for _, id := range []int{1, 2, 3} {
		if err := repo.Record(1, id); err != nil {
			t.Fatalf("record failed: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	ids := fetchIDs(t, app, "/products-recent-views?limit=2")
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 2 {
		t.Fatalf("expected [3 2], got %v", ids)
	}
}
