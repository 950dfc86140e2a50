package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Post("/sessions", controllers.Auth.SignIn)
	app.Delete("/sessions", controllers.Auth.SignOut)

	api := app.Group("/", controllers.AlwaysRequireAuthenticationMiddleware)

	api.Post("/users/redeem/:code", controllers.Users.Redeem)

	accountsGroup := api.Group("/accounts")
	accountsGroup.Get("/:id<int>", controllers.Accounts.Show)

	// Administrative commands
	adminGroup := accountsGroup.Group("/", RequireAdmin)
	adminGroup.Post("/", controllers.Accounts.Create)
	adminGroup.Post("/:id<int>/activate", controllers.Accounts.Activate)
	adminGroup.Post("/:id<int>/deactivate", controllers.Accounts.Deactivate)
	adminGroup.Post("/:id<int>/cancel", controllers.Accounts.Cancel)

	adminGroup.Get("/:id<int>/instance", controllers.Instances.Show)
	adminGroup.Post("/:id<int>/instance", controllers.Instances.Create)
	adminGroup.Post("/:id<int>/instance/upgrade", controllers.Instances.Upgrade)
	adminGroup.Get("/:id<int>/instance/availability", controllers.Instances.Availability)
	adminGroup.Post("/:id<int>/instance/:instanceId<int>/stop", controllers.Instances.Stop)
	adminGroup.Post("/:id<int>/instance/:instanceId<int>/restart", controllers.Instances.Restart)
	adminGroup.Post("/:id<int>/instance/:instanceId<int>/reinitialize", controllers.Instances.ReInitialize)
	adminGroup.Post("/:id<int>/instance/:instanceId<int>/reinitialize-user-roles", controllers.Instances.ReInitializeUserRoles)

	adminGroup.Get("/:id<int>/bindings/primary", controllers.Bindings.Primary)
	adminGroup.Get("/:id<int>/bindings/secondary", controllers.Bindings.Secondaries)
	adminGroup.Post("/:id<int>/bindings", controllers.Bindings.Add)
	adminGroup.Delete("/:id<int>/bindings/:bindingId<int>", controllers.Bindings.Remove)

	adminGroup.Get("/:id<int>/invitations", controllers.Users.Invitations)
	adminGroup.Post("/:id<int>/invitations", controllers.Users.Invite)
	adminGroup.Delete("/:id<int>/invitations/:invitationId<int>", controllers.Users.DeleteInvitation)
}
