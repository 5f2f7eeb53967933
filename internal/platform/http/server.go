package http

import (
	"github.com/gofiber/fiber/v2"
)

type Options struct {
	AppName string
}

func NewServer(opts Options, modules ...Module) *fiber.App {
	app := fiber.New(fiber.Config{AppName: opts.AppName})

	// глобальные middleware можно добавить здесь (recover, compress, requestID и т.п.)

	api := app.Group("/api")

	// регистрация модулей
	for _, m := range modules {
		m.Register(api)
	}

	// health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	return app
}
