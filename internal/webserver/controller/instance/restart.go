package instance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Restart issues a restart of a running instance. The instance is
// reconfigured once it reports running again.
func (i *Controller) Restart(c *fiber.Ctx) error {
	instanceID, err := c.ParamsInt("instanceId")
	if err != nil || instanceID < 1 {
		return fiber.ErrBadRequest
	}

	if err := i.instances.Restart(c.UserContext(), uint(instanceID)); err != nil {
		return controller.APIError(err)
	}

	return c.SendStatus(fiber.StatusAccepted)
}
