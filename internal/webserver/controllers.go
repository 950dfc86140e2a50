package webserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"gorm.io/gorm"

	"github.com/cloudkeep/cloudkeep/internal/account"
	"github.com/cloudkeep/cloudkeep/internal/binding"
	"github.com/cloudkeep/cloudkeep/internal/instance"
	"github.com/cloudkeep/cloudkeep/internal/invitation"
	"github.com/cloudkeep/cloudkeep/internal/model"
	accountctrl "github.com/cloudkeep/cloudkeep/internal/webserver/controller/account"
	"github.com/cloudkeep/cloudkeep/internal/webserver/controller/auth"
	bindingctrl "github.com/cloudkeep/cloudkeep/internal/webserver/controller/binding"
	instancectrl "github.com/cloudkeep/cloudkeep/internal/webserver/controller/instance"
	"github.com/cloudkeep/cloudkeep/internal/webserver/controller/user"
)

type Controllers struct {
	Auth                                  *auth.Controller
	Accounts                              *accountctrl.Controller
	Instances                             *instancectrl.Controller
	Bindings                              *bindingctrl.Controller
	Users                                 *user.Controller
	AlwaysRequireAuthenticationMiddleware func(c *fiber.Ctx) error
	ErrorHandler                          func(c *fiber.Ctx, err error) error
}

// Services groups the orchestrator services exposed through the API.
type Services struct {
	Accounts    *account.Service
	Instances   *instance.Service
	Poller      *instance.Poller
	Bindings    *binding.Registry
	Invitations *invitation.Service
}

func SetupControllers(cfg Config, db *gorm.DB, services Services, sender Sender, defaultExpirationDays int) Controllers {
	usersRepository := &model.UserRepository{DB: db}

	authController := auth.NewController(usersRepository, auth.Config{
		Secret:         cfg.JwtSecret,
		SessionTimeout: cfg.SessionTimeout,
	})
	accountsController := accountctrl.NewController(services.Accounts)
	instancesController := instancectrl.NewController(services.Instances, services.Poller)
	bindingsController := bindingctrl.NewController(services.Bindings)
	usersController := user.NewController(services.Invitations, usersRepository, sender, user.Config{
		DefaultExpirationDays: defaultExpirationDays,
	})

	return Controllers{
		Auth:      authController,
		Accounts:  accountsController,
		Instances: instancesController,
		Bindings:  bindingsController,
		Users:     usersController,
		AlwaysRequireAuthenticationMiddleware: jwtware.New(jwtware.Config{
			SigningKey:    cfg.JwtSecret,
			SigningMethod: "HS256",
			TokenLookup:   "header:Authorization,cookie:cloudkeep",
			AuthScheme:    "Bearer",
			SuccessHandler: func(c *fiber.Ctx) error {
				c.Locals("Session", sessionData(c))
				return c.Next()
			},
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return fiber.ErrForbidden
			},
		}),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	}
}
