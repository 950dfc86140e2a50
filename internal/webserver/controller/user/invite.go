package user

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

type inviteRequest struct {
	Email          string `json:"email"`
	ExpirationDays int    `json:"expiration_days"`
}

// Invite issues a time-limited invitation and mails the redemption link to
// the invited address.
func (u *Controller) Invite(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil || accountID < 1 {
		return fiber.ErrBadRequest
	}

	var request inviteRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "incorrect email address")
	}
	if request.ExpirationDays <= 0 {
		request.ExpirationDays = u.config.DefaultExpirationDays
	}

	invitation, err := u.invitations.Invite(uint(accountID), request.Email, request.ExpirationDays, u.sender)
	if err != nil {
		return controller.APIError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(invitation)
}
