package http

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cuauhvip07/cripto/internal/modules/account/domain"
	"github.com/cuauhvip07/cripto/internal/platform/security"
)

type verifyReq struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type verifyResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

func VerifyTokenHandler(repo domain.AccountRepo, jwtMgr *security.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req verifyReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "MISSING_FIELDS",
				"message":    "Email and token are required",
			})
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if req.Email == "" || req.Token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "MISSING_FIELDS",
				"message":    "Email and token are required",
			})
		}

		a, err := repo.GetByEmail(req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error_code": "NOT_FOUND",
					"message":    "Account not found",
				})
			}
			log.Printf("verify-token: get account: %v", err)
			return serverError(c)
		}

		// погашенный код не даёт повторного успеха
		if a.Verified {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "ALREADY_VERIFIED",
				"message":    "Account is already verified",
			})
		}

		// сравнение строк без нормализации
		if req.Token != a.PendingToken {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_TOKEN",
				"message":    "Invalid token",
			})
		}

		if err := repo.MarkVerified(a.ID); err != nil {
			log.Printf("verify-token: mark verified: %v", err)
			return serverError(c)
		}

		session, _, err := jwtMgr.Issue(a.Email)
		if err != nil {
			log.Printf("verify-token: issue credential: %v", err)
			return serverError(c)
		}

		return c.JSON(verifyResp{Success: true, Message: "Token valid", Token: session})
	}
}
