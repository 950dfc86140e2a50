package instance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Stop issues the stop call and logically destroys the account's instance.
func (i *Controller) Stop(c *fiber.Ctx) error {
	instanceID, err := c.ParamsInt("instanceId")
	if err != nil || instanceID < 1 {
		return fiber.ErrBadRequest
	}

	if err := i.instances.Stop(c.UserContext(), uint(instanceID)); err != nil {
		return controller.APIError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
