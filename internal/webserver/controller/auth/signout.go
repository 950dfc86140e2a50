package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SignOut voids the session cookie.
func (a *Controller) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "cloudkeep",
		Value:    "void",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		Secure:   false,
		HTTPOnly: true,
	})

	return c.SendStatus(fiber.StatusNoContent)
}
