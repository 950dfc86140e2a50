package account

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Activate transitions the account to active.
func (a *Controller) Activate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrBadRequest
	}

	updated, err := a.accounts.Activate(uint(id))
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(updated)
}

// Deactivate transitions the account to inactive.
func (a *Controller) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrBadRequest
	}

	updated, err := a.accounts.Deactivate(uint(id))
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(updated)
}
