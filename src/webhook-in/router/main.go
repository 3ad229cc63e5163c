package webhook_router

import (
	"github.com/Astervia/wacraft-relay/src/config/env"
	"github.com/Astervia/wacraft-relay/src/integration/whatsapp"
	relay_service "github.com/Astervia/wacraft-relay/src/relay/service"
	webhook_handler "github.com/Astervia/wacraft-relay/src/webhook-in/handler"
	webhook_middleware "github.com/Astervia/wacraft-relay/src/webhook-in/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// Route registers the HTTP endpoints. Signature verification only runs
// when an app secret is configured, mirroring the Meta dashboard setup.
func Route(app *fiber.App) {
	relay := relay_service.NewRelay(whatsapp.NewCourier(&whatsapp.WabaApi))
	handler := webhook_handler.NewMessageWebhook(relay, env.MetaVerifyToken)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/webhook", handler.Verify)
	app.Post("/webhook",
		func(c *fiber.Ctx) error {
			appSecret := env.MetaAppSecret
			if appSecret == "" {
				return c.Next()
			}
			return webhook_middleware.VerifyMetaSignature(appSecret)(c)
		},
		handler.Receive,
	)

	pterm.DefaultLogger.Info("Registered WhatsApp webhook at /webhook")
}
