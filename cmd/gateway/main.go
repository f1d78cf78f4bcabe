package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"camrent-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// forwardTo proxies the request to the backing service, keeping the original
// path so the service's own route groups line up.
func forwardTo(base string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return proxy.Do(c, base+c.OriginalURL())
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	app := fiber.New(fiber.Config{
		AppName: "CamRent Gateway v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.All("/users/*", forwardTo(cfg.UsersServiceURL))
	app.All("/users", forwardTo(cfg.UsersServiceURL))
	app.All("/products/*", forwardTo(cfg.ProductsServiceURL))
	app.All("/products", forwardTo(cfg.ProductsServiceURL))

	go func() {
		log.Printf("CamRent Gateway listening at %s", cfg.GatewayAddr)
		if err := app.Listen(cfg.GatewayAddr); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gateway...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
