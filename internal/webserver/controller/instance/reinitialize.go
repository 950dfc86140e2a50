package instance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// ReInitialize re-pushes the full configuration to the instance.
func (i *Controller) ReInitialize(c *fiber.Ctx) error {
	instanceID, err := c.ParamsInt("instanceId")
	if err != nil || instanceID < 1 {
		return fiber.ErrBadRequest
	}

	if err := i.instances.ReInitialize(c.UserContext(), uint(instanceID)); err != nil {
		return controller.APIError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ReInitializeUserRoles re-pushes only the user/role subset.
func (i *Controller) ReInitializeUserRoles(c *fiber.Ctx) error {
	instanceID, err := c.ParamsInt("instanceId")
	if err != nil || instanceID < 1 {
		return fiber.ErrBadRequest
	}

	if err := i.instances.ReInitializeUserRoles(c.UserContext(), uint(instanceID)); err != nil {
		return controller.APIError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
