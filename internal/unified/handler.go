// Package unified serves the single endpoint that multiplexes product
// lookup, favorite toggling and cart mutations behind a path-embedded action
// token, so clients get one uniform response shape for every interaction.
package unified

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lucystudio/shop-backend/internal/cart"
	"github.com/lucystudio/shop-backend/internal/identity"
	"github.com/lucystudio/shop-backend/internal/product"
	"github.com/lucystudio/shop-backend/internal/response"
)

const (
	actionGet        = "get"
	actionFavorite   = "favorite"
	actionCartAdd    = "cart-add"
	actionCartRemove = "cart-remove"
	actionCartUpdate = "cart-update"
)

// Handler composes the product and cart services, mirroring how cross-feature
// endpoints are wired elsewhere in the app.
type Handler struct {
	products  *product.Service
	carts     *cart.Service
	formatter *product.Formatter
}

func NewHandler(products *product.Service, carts *cart.Service, formatter *product.Formatter) *Handler {
	return &Handler{products: products, carts: carts, formatter: formatter}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/:action/:id<[0-9]+>", h.handleAction)
}

// actionResult is the consolidated response shape shared by every action.
type actionResult struct {
	Product      product.Formatted `json:"product"`
	IsFavorite   bool              `json:"is_favorite"`
	InCart       bool              `json:"in_cart"`
	CartQuantity int               `json:"cart_quantity"`
	Likes        int               `json:"likes"`
}

func (h *Handler) handleAction(c *fiber.Ctx) error {
	action := c.Params("action")
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	userID := identity.UserID(c)
	quantity := c.QueryInt("quantity", 1)

	var message string
	switch action {
	case actionFavorite:
		state, err := h.products.ToggleFavorite(productID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return response.Error(c, fiber.StatusNotFound, "product not found")
			}
			log.Printf("unified: favorite toggle %d failed: %v", productID, err)
			return response.Error(c, fiber.StatusInternalServerError, "favorite toggle failed")
		}
		if state.IsFavorite {
			message = "favorite added"
		} else {
			message = "favorite removed"
		}

	case actionCartAdd:
		newQty, err := h.carts.Add(userID, productID, quantity)
		if err != nil {
			log.Printf("unified: cart add (%d,%d) failed: %v", userID, productID, err)
			return response.Error(c, fiber.StatusInternalServerError, "cart update failed")
		}
		message = fmt.Sprintf("cart quantity is now %d", newQty)

	case actionCartRemove:
		if err := h.carts.Remove(userID, productID); err != nil {
			log.Printf("unified: cart remove (%d,%d) failed: %v", userID, productID, err)
			return response.Error(c, fiber.StatusInternalServerError, "cart update failed")
		}
		message = "removed from cart"

	case actionCartUpdate:
		if err := h.carts.Set(userID, productID, quantity); err != nil {
			log.Printf("unified: cart update (%d,%d) failed: %v", userID, productID, err)
			return response.Error(c, fiber.StatusInternalServerError, "cart update failed")
		}
		message = fmt.Sprintf("quantity set to %d", quantity)

	case actionGet:
		message = "product loaded"

	default:
		return response.Error(c, fiber.StatusBadRequest, "unsupported action: "+action)
	}

	// Re-read product and cart state so every action answers with the same
	// consolidated shape.
	p, err := h.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return response.Error(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("unified: reload product %d failed: %v", productID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load product")
	}

	entry, inCart, err := h.carts.Get(userID, productID)
	if err != nil {
		log.Printf("unified: cart state (%d,%d) failed: %v", userID, productID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load cart state")
	}
	cartQty := 0
	if inCart {
		cartQty = entry.Quantity
	}

	return response.OK(c, actionResult{
		Product:      h.formatter.Apply(p),
		IsFavorite:   p.IsFavorite,
		InCart:       inCart && cartQty > 0,
		CartQuantity: cartQty,
		Likes:        p.LikesCount(),
	}, message)
}
