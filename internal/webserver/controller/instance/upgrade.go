package instance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Upgrade stops the account's instance and creates a fresh one at the
// latest catalog version.
func (i *Controller) Upgrade(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	upgraded, err := i.instances.Upgrade(c.UserContext(), uint(accountID))
	if err != nil {
		return controller.APIError(err)
	}

	i.watch(uint(accountID))

	return c.Status(fiber.StatusCreated).JSON(upgraded)
}
