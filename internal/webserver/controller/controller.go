package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/account"
	"github.com/cloudkeep/cloudkeep/internal/binding"
	"github.com/cloudkeep/cloudkeep/internal/instance"
	"github.com/cloudkeep/cloudkeep/internal/invitation"
	"github.com/cloudkeep/cloudkeep/internal/model"
)

// APIError translates the service error taxonomy to HTTP statuses. Unknown
// errors fall through as internal server errors.
func APIError(err error) error {
	switch {
	case errors.Is(err, model.ErrAccountNotFound),
		errors.Is(err, model.ErrInstanceNotFound),
		errors.Is(err, model.ErrBindingNotFound),
		errors.Is(err, model.ErrInvitationNotFound),
		errors.Is(err, binding.ErrProviderAccountNotAvailable):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrConcurrentUpdate),
		errors.Is(err, account.ErrSubdomainAlreadyExists),
		errors.Is(err, account.ErrAccountCancelled),
		errors.Is(err, instance.ErrNotAvailable):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, instance.ErrVersionNotSupported):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, invitation.ErrExpired):
		return fiber.NewError(fiber.StatusGone, err.Error())
	}
	return fiber.ErrInternalServerError
}
