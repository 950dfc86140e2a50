package instance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Availability answers "is the account's instance ready". The default is a
// single immediate check; ?wait=true blocks until the instance initializes
// or the poller's deadline elapses, cancellable by client disconnect. A
// deadline that elapses is reported as not ready, it is not an error.
func (i *Controller) Availability(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	if c.QueryBool("wait") {
		result, err := i.poller.WaitUntilReady(c.UserContext(), uint(accountID))
		if err != nil {
			return controller.APIError(err)
		}
		return c.JSON(fiber.Map{
			"ready":    result.Ready,
			"instance": result.Instance,
		})
	}

	instances, err := i.instances.SyncForAccount(c.UserContext(), uint(accountID))
	if err != nil {
		return controller.APIError(err)
	}
	if len(instances) == 1 && instances[0].Initialized {
		return c.JSON(fiber.Map{
			"ready":    true,
			"instance": instances[0],
		})
	}
	return c.JSON(fiber.Map{
		"ready": false,
	})
}

// Show returns the account's single instance.
func (i *Controller) Show(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	found, err := i.instances.ForAccount(uint(accountID))
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(found)
}
