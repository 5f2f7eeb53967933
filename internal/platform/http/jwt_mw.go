package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTAuth validates the Bearer session credential and stores the email claim
// in c.Locals("email"). Expired and forged tokens get the same generic answer.
func JWTAuth(secret []byte) fiber.Handler {
	reject := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error_code": "INVALID_CREDENTIAL",
			"message":    "Missing or invalid credential",
		})
	}
	return func(c *fiber.Ctx) error {
		h := c.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			return reject(c)
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")
		tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !tok.Valid {
			return reject(c)
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return reject(c)
		}
		email, _ := claims["email"].(string)
		if email == "" {
			return reject(c)
		}
		c.Locals("email", email)

		return c.Next()
	}
}
