package http

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/cuauhvip07/cripto/internal/modules/account/domain"
	"github.com/cuauhvip07/cripto/internal/platform/security"
)

type registerReq struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

var validate = validator.New()

type registerResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func RegisterHandler(repo domain.AccountRepo, mailer TokenMailer, mailTimeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "MISSING_FIELDS",
				"message":    "All fields are required",
			})
		}

		// все четыре поля обязательны
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "MISSING_FIELDS",
				"message":    "All fields are required",
			})
		}

		if req.Password != req.ConfirmPassword {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "PASSWORD_MISMATCH",
				"message":    "Passwords do not match",
			})
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		exists, err := repo.ExistsByEmail(email)
		if err != nil {
			log.Printf("register: exists check: %v", err)
			return serverError(c)
		}
		if exists {
			return emailTaken(c)
		}

		pwHash, err := security.HashPassword(req.Password)
		if err != nil {
			log.Printf("register: hash password: %v", err)
			return serverError(c)
		}

		token, err := security.VerificationToken()
		if err != nil {
			log.Printf("register: generate token: %v", err)
			return serverError(c)
		}

		keys, err := security.GenerateKeyPair()
		if err != nil {
			log.Printf("register: generate keypair: %v", err)
			return serverError(c)
		}

		a, err := repo.Create(domain.CreateAccountParams{
			Email:        email,
			Name:         req.Name,
			PasswordHash: pwHash,
			PendingToken: token,
			PublicKey:    keys.PublicKey,
			PrivateKey:   keys.PrivateKey,
		})
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				return emailTaken(c)
			}
			log.Printf("register: create account: %v", err)
			return serverError(c)
		}

		// отправка кода — fire-and-forget: ответ клиенту не ждёт письма,
		// ошибка доставки только логируется
		if mailer != nil {
			go func(to, token string) {
				ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
				defer cancel()
				if err := mailer.SendVerificationToken(ctx, to, token); err != nil {
					log.Printf("register: send verification mail to %s: %v", to, err)
				}
			}(a.Email, a.PendingToken)
		}

		return c.JSON(registerResp{Success: true, Message: "Account registered, check your email"})
	}
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error_code": "SERVER_ERROR",
		"message":    "Internal error",
	})
}

func emailTaken(c *fiber.Ctx) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error_code": "EMAIL_TAKEN",
		"message":    "Email already registered",
	})
}
