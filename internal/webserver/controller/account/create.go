package account

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudkeep/cloudkeep/internal/account"
	"github.com/cloudkeep/cloudkeep/internal/model"
	"github.com/cloudkeep/cloudkeep/internal/webserver/controller"
)

type createRequest struct {
	Subdomain   string `json:"subdomain"`
	OrgName     string `json:"org_name"`
	Department  string `json:"department"`
	ServicePlan string `json:"service_plan"`
}

// Create allocates a new pending account owned by the authenticated user.
func (a *Controller) Create(c *fiber.Ctx) error {
	var request createRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}
	if request.Subdomain == "" {
		return fiber.NewError(fiber.StatusBadRequest, "subdomain cannot be empty")
	}

	session := c.Locals("Session").(model.Session)
	owner := &model.User{ID: session.ID, Email: session.Email}

	created, err := a.accounts.Create(account.CreationInfo{
		Subdomain:   request.Subdomain,
		OrgName:     request.OrgName,
		Department:  request.Department,
		ServicePlan: request.ServicePlan,
	}, owner)
	if err != nil {
		return controller.APIError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
