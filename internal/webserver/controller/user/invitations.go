package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

// Invitations lists every stored invitation for the account, expired ones
// included.
func (u *Controller) Invitations(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	invitations, err := u.invitations.ListPending(uint(accountID))
	if err != nil {
		return controller.APIError(err)
	}

	return c.JSON(invitations)
}

// DeleteInvitation removes an invitation unconditionally.
func (u *Controller) DeleteInvitation(c *fiber.Ctx) error {
	invitationID, err := c.ParamsInt("invitationId")
	if err != nil || invitationID < 1 {
		return fiber.ErrBadRequest
	}

	if err := u.invitations.Delete(uint(invitationID)); err != nil {
		return controller.APIError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
