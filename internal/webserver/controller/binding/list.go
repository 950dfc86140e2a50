package binding

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Primary returns the account's primary binding.
func (b *Controller) Primary(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	primary, err := b.bindings.Primary(uint(accountID))
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(primary)
}

// Secondaries returns the account's non-primary bindings.
func (b *Controller) Secondaries(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	secondaries, err := b.bindings.Secondaries(uint(accountID))
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(secondaries)
}
