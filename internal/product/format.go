package product

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ActionURLs are the five fixed-shape links attached to every formatted
// product, each embedding the public base URL and the product id.
type ActionURLs struct {
	Get        string `json:"get"`
	Favorite   string `json:"favorite"`
	CartAdd    string `json:"cart_add"`
	CartRemove string `json:"cart_remove"`
	CartUpdate string `json:"cart_update"`
}

// Formatted is the display-ready shape of a product: price and discount
// rendered as strings, plus the action link map.
type Formatted struct {
	Product
	APIURLs ActionURLs `json:"api_urls"`
}

// Formatter renders raw product rows into display form. It is constructed
// once with the public base URL and shared across handlers.
type Formatter struct {
	baseURL string
	printer *message.Printer
}

func NewFormatter(baseURL string) *Formatter {
	return &Formatter{
		baseURL: strings.TrimRight(baseURL, "/"),
		printer: message.NewPrinter(language.Korean),
	}
}

// Apply formats a single product for display.
func (f *Formatter) Apply(p Product) Formatted {
	out := Formatted{Product: p}
	out.Price = f.printer.Sprintf("%d", intPart(p.Price)) + "원"
	out.Discount = strconv.FormatInt(intPart(p.Discount), 10) + "%"
	out.APIURLs = f.actionURLs(p.ID)
	return out
}

// ApplyAll formats a list of products, preserving order.
func (f *Formatter) ApplyAll(products []Product) []Formatted {
	out := make([]Formatted, 0, len(products))
	for _, p := range products {
		out = append(out, f.Apply(p))
	}
	return out
}

func (f *Formatter) actionURLs(id int) ActionURLs {
	return ActionURLs{
		Get:        fmt.Sprintf("%s/api/get/%d", f.baseURL, id),
		Favorite:   fmt.Sprintf("%s/api/favorite/%d", f.baseURL, id),
		CartAdd:    fmt.Sprintf("%s/api/cart-add/%d", f.baseURL, id),
		CartRemove: fmt.Sprintf("%s/api/cart-remove/%d", f.baseURL, id),
		CartUpdate: fmt.Sprintf("%s/api/cart-update/%d", f.baseURL, id),
	}
}

// intPart parses a numeric string (plain or decimal) and returns its integer
// part. Non-numeric input renders as 0.
func intPart(raw string) int64 {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return d.IntPart()
}
