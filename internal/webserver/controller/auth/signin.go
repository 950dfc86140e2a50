package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

// SignIn checks the supplied credentials and hands back a JWT, both as a
// cookie and in the response body.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	user, err := a.repository.FindByEmail(c.FormValue("email"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || user.Password != model.Hash(c.FormValue("password")) {
		return fiber.NewError(fiber.StatusUnauthorized, "wrong email or password")
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     "cloudkeep",
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"token": signedToken,
	})
}

func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": fiber.Map{
			"ID":    user.ID,
			"Name":  user.Name,
			"Email": user.Email,
			"Role":  user.Role,
			"Uuid":  user.Uuid,
		},
		"exp": jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
