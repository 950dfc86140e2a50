package instance

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

type createRequest struct {
	Version string `json:"version"`
}

// Create provisions a compute instance for the account and starts a
// background wait that drives the instance through initialization. The
// response returns immediately with the instance in creating state.
func (i *Controller) Create(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	var request createRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	created, err := i.instances.Create(c.UserContext(), uint(accountID), request.Version)
	if err != nil {
		return controller.APIError(err)
	}

	i.watch(uint(accountID))

	return c.Status(fiber.StatusCreated).JSON(created)
}

// watch polls initialization off the request path. The wait budget runs to
// minutes, far beyond any sane request timeout.
func (i *Controller) watch(accountID uint) {
	go func() {
		result, err := i.poller.WaitUntilReady(context.Background(), accountID)
		if err != nil {
			log.Printf("error waiting for instance of account %d: %s\n", accountID, err)
			return
		}
		if !result.Ready {
			log.Printf("instance of account %d not ready before deadline\n", accountID)
			return
		}
		log.Printf("instance %d of account %d is initialized\n", result.Instance.ID, accountID)
	}()
}
