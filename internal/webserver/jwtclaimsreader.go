package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

func sessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	if token, ok := c.Locals("user").(*jwt.Token); ok {
		claims := token.Claims.(jwt.MapClaims)
		userDataMap := claims["userdata"].(map[string]interface{})
		if value, ok := userDataMap["ID"].(float64); ok {
			session.ID = uint(value)
		}
		if value, ok := userDataMap["Name"].(string); ok {
			session.Name = value
		}
		if value, ok := userDataMap["Email"].(string); ok {
			session.Email = value
		}
		if value, ok := userDataMap["Role"].(float64); ok {
			session.Role = int(value)
		}
		if value, ok := userDataMap["Uuid"].(string); ok {
			session.Uuid = value
		}

		session.Exp = claims["exp"].(float64)
	}

	return session
}
