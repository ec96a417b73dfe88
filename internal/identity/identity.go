// Package identity resolves the acting user for a request. Storefront
// endpoints are public: a bearer token is honoured when present, otherwise
// the user_id query parameter applies, defaulting to user 1.
package identity

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// DefaultUserID is assumed when a request carries no token and no user_id.
const DefaultUserID = 1

// UserID returns the user id for the request. Precedence: JWT claim
// (set by the jwt middleware when an Authorization header was sent),
// then the user_id query parameter, then DefaultUserID.
func UserID(c *fiber.Ctx) int {
	if id, ok := fromToken(c); ok {
		return id
	}
	if raw := c.Query("user_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			return id
		}
	}
	return DefaultUserID
}

// QueryUserID returns the user_id query parameter without a default.
// Used by endpoints where the user filter is optional.
func QueryUserID(c *fiber.Ctx) (int, bool) {
	if id, ok := fromToken(c); ok {
		return id, true
	}
	raw := c.Query("user_id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func fromToken(c *fiber.Ctx) (int, bool) {
	u := c.Locals("user")
	if u == nil {
		return 0, false
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	raw, ok := claims["user_id"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
