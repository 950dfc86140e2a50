package binding

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

type addRequest struct {
	ProviderType string `json:"provider_type"`
}

// Add allocates a storage-provider account and binds it to the account. The
// first binding of an account becomes primary.
func (b *Controller) Add(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	var request addRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}
	if request.ProviderType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "provider_type cannot be empty")
	}

	bindingID, err := b.bindings.Add(uint(accountID), request.ProviderType)
	if err != nil {
		return controller.APIError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": bindingID,
	})
}
