package account

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/model"
	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Cancel marks the account cancelled. It fails while the account still owns
// a running instance.
func (a *Controller) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrBadRequest
	}

	session := c.Locals("Session").(model.Session)
	requestingUser := &model.User{ID: session.ID, Email: session.Email}

	if err := a.accounts.Cancel(uint(id), requestingUser); err != nil {
		return controller.APIError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
