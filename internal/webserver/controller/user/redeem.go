package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/model"
	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Redeem consumes an invitation code on behalf of the authenticated user,
// granting them membership of the inviting account.
func (u *Controller) Redeem(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return fiber.ErrBadRequest
	}

	session := c.Locals("Session").(model.Session)
	user, err := u.users.FindByUuid(session.Uuid)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrForbidden
	}

	redeemed, err := u.invitations.Redeem(code, user)
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(fiber.Map{
		"account_id": redeemed.AccountID,
	})
}
