package cart

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lucystudio/shop-backend/internal/identity"
	"github.com/lucystudio/shop-backend/internal/product"
	"github.com/lucystudio/shop-backend/internal/response"
)

// Handler serves the cart listing endpoints. It also owns the combined
// cart-and-favorites view, so it takes the product service as a collaborator.
type Handler struct {
	service   *Service
	products  *product.Service
	formatter *product.Formatter
}

func NewHandler(service *Service, products *product.Service, formatter *product.Formatter) *Handler {
	return &Handler{service: service, products: products, formatter: formatter}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/cart-items", h.getCartItems)
	app.Get("/user/cart-and-favorites", h.getCartAndFavorites)
}

// itemView is the wire shape of one cart entry.
type itemView struct {
	CartItemID int               `json:"cart_item_id"`
	Quantity   int               `json:"quantity"`
	UserID     int               `json:"user_id,omitempty"`
	Product    product.Formatted `json:"product"`
}

func (h *Handler) getCartItems(c *fiber.Ctx) error {
	userID, _ := identity.QueryUserID(c)

	entries, err := h.service.List(userID)
	if err != nil {
		log.Printf("cart: list failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to list cart items")
	}

	items := make([]itemView, 0, len(entries))
	for _, e := range entries {
		items = append(items, itemView{
			CartItemID: e.ID,
			Quantity:   e.Quantity,
			UserID:     e.UserID,
			Product:    h.formatter.Apply(e.Product),
		})
	}
	return response.OK(c, items, "Success")
}

func (h *Handler) getCartAndFavorites(c *fiber.Ctx) error {
	userID := identity.UserID(c)

	entries, err := h.service.List(userID)
	if err != nil {
		log.Printf("cart: list for user %d failed: %v", userID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load user data")
	}
	favorites, err := h.products.Favorites()
	if err != nil {
		log.Printf("cart: favorites failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load user data")
	}

	items := make([]itemView, 0, len(entries))
	for _, e := range entries {
		items = append(items, itemView{
			CartItemID: e.ID,
			Quantity:   e.Quantity,
			Product:    h.formatter.Apply(e.Product),
		})
	}
	formattedFavorites := h.formatter.ApplyAll(favorites)

	return response.OK(c, fiber.Map{
		"user_id":         userID,
		"cart_items":      items,
		"favorites":       formattedFavorites,
		"cart_count":      len(items),
		"favorites_count": len(formattedFavorites),
	}, "Success")
}
