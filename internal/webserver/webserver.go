package webserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	Version        string
	JwtSecret      []byte
	SessionTimeout time.Duration
	// Endpoint is the externally reachable base URL of this console.
	Endpoint string
}

// Sender delivers notification emails.
type Sender interface {
	From() string
	Send(address, subject, body string) error
	SendBCC(addresses []string, subject, body string) error
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Version,
		ErrorHandler: controllers.ErrorHandler,
	})

	routes(app, controllers)

	return app
}
