package product

import "testing"

func TestFormatterApply(t *testing.T) {
	f := NewFormatter("http://localhost:8001")

	got := f.Apply(Product{ID: 7, Price: "15000", Discount: "10", Likes: "3"})

	if got.Price != "15,000원" {
		t.Fatalf("expected price '15,000원', got %q", got.Price)
	}
	if got.Discount != "10%" {
		t.Fatalf("expected discount '10%%', got %q", got.Discount)
	}

	urls := got.APIURLs
	expected := map[string]string{
		"get":         urls.Get,
		"favorite":    urls.Favorite,
		"cart_add":    urls.CartAdd,
		"cart_remove": urls.CartRemove,
		"cart_update": urls.CartUpdate,
	}
	want := map[string]string{
		"get":         "http://localhost:8001/api/get/7",
		"favorite":    "http://localhost:8001/api/favorite/7",
		"cart_add":    "http://localhost:8001/api/cart-add/7",
		"cart_remove": "http://localhost:8001/api/cart-remove/7",
		"cart_update": "http://localhost:8001/api/cart-update/7",
	}
	for key, w := range want {
		if expected[key] != w {
			t.Fatalf("url %s: expected %q, got %q", key, w, expected[key])
		}
	}
}

func TestFormatterApply_DecimalStrings(t *testing.T) {
	f := NewFormatter("http://localhost:8001/")

	got := f.Apply(Product{ID: 1, Price: "1234567.89", Discount: "25.5"})
	if got.Price != "1,234,567원" {
		t.Fatalf("expected truncated grouped price, got %q", got.Price)
	}
	if got.Discount != "25%" {
		t.Fatalf("expected truncated discount, got %q", got.Discount)
	}
	// trailing slash on the base URL must not produce double slashes
	if got.APIURLs.Get != "http://localhost:8001/api/get/1" {
		t.Fatalf("unexpected get url %q", got.APIURLs.Get)
	}
}

func TestFormatterApply_NonNumericInput(t *testing.T) {
	f := NewFormatter("http://localhost:8001")

	got := f.Apply(Product{ID: 2, Price: "free", Discount: ""})
	if got.Price != "0원" {
		t.Fatalf("expected '0원' for non-numeric price, got %q", got.Price)
	}
	if got.Discount != "0%" {
		t.Fatalf("expected '0%%' for empty discount, got %q", got.Discount)
	}
}

func TestFormatterApplyAll_PreservesOrder(t *testing.T) {
	f := NewFormatter("http://localhost:8001")
	in := []Product{{ID: 3, Price: "100", Discount: "1"}, {ID: 1, Price: "200", Discount: "2"}}

	out := f.ApplyAll(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 formatted products, got %d", len(out))
	}
	if out[0].ID != 3 || out[1].ID != 1 {
		t.Fatalf("order not preserved: %d, %d", out[0].ID, out[1].ID)
	}
}
