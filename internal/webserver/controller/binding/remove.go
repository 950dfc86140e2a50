package binding

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Remove deletes a secondary binding. Removal is single-use; a second
// removal of the same id fails.
func (b *Controller) Remove(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}
	bindingID, err := c.ParamsInt("bindingId")
	if err != nil || bindingID < 1 {
		return fiber.ErrBadRequest
	}

	if err := b.bindings.Remove(uint(accountID), uint(bindingID)); err != nil {
		return controller.APIError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
