package account

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

func (a *Controller) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrBadRequest
	}

	found, err := a.accounts.Get(uint(id))
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(found)
}
