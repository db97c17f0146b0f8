package handler // handler defines http handlers

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the user_id that JWTAuth stored in the echo
// context. JWT claims decode as interface{}, so the value is asserted
// back to the string IDs used throughout the stores.
func getUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("invalid user_id in context")
}

// isAdmin reports whether the authenticated request carries the admin
// role claim.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "admin"
}
