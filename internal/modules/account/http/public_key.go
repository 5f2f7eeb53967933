package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cuauhvip07/cripto/internal/modules/account/domain"
)

type publicKeyResp struct {
	Success   bool   `json:"success"`
	PublicKey string `json:"publicKey"`
}

// GetPublicKeyHandler serves the account public key; identity comes from the
// session credential validated by the JWT middleware.
func GetPublicKeyHandler(repo domain.AccountRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		a, err := repo.GetByEmail(email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error_code": "NOT_FOUND",
					"message":    "Account not found",
				})
			}
			log.Printf("get-public-key: get account: %v", err)
			return serverError(c)
		}

		return c.JSON(publicKeyResp{Success: true, PublicKey: a.PublicKey})
	}
}
