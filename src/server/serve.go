package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astervia/wacraft-relay/src/config/env"
	webhook_router "github.com/Astervia/wacraft-relay/src/webhook-in/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/pterm/pterm"
)

func serve() {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	webhook_router.Route(app)

	// Setup graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		pterm.DefaultLogger.Info("Shutdown signal received, stopping server...")
		app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf(":%s", env.ServerPort))
	pterm.DefaultLogger.Fatal(
		fmt.Sprintf("%v", err),
	)
}
