package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"camrent-backend/internal/config"
	"camrent-backend/internal/handler"
	"camrent-backend/internal/middleware"
	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
	"camrent-backend/internal/service"
	"camrent-backend/internal/ws"
	"camrent-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.CartItem{}, &model.Transaction{}, &model.Payment{})

	wsHub := ws.NewHub()
	go wsHub.Run()

	productRepo := repository.NewProductRepo(db)
	cartRepo := repository.NewCartRepo(db)
	stockRepo := repository.NewStockRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	productService := service.NewProductService(productRepo, wsHub)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(stockRepo, cartRepo, txRepo, wsHub)
	txService := service.NewTransactionService(txRepo)

	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	txHandler := handler.NewTransactionHandler(checkoutService, txService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	app := fiber.New(fiber.Config{
		AppName: "CamRent Products v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Static(cfg.AssetsPrefix, "./assets")

	products := app.Group("/products")

	// Public catalog
	products.Get("/", productHandler.GetProducts)
	products.Get("/stat", txHandler.GetStats)
	products.Get("/stock/stock-details", productHandler.GetStockDetails)
	products.Get("/category/:category", productHandler.GetProductsByCategory)

	// Transactions (registered before the /:id catch-all)
	products.Get("/transaction/all", middleware.RequireAuth(), middleware.RequireAdmin(), txHandler.GetTransactions)
	products.Get("/transaction/:id", middleware.RequireAuth(), txHandler.GetTransaction)
	products.Post("/transaction/payment", middleware.RequireAuth(), txHandler.SubmitPayment)
	products.Put("/transaction/status/:id", middleware.RequireAuth(), middleware.RequireAdmin(), txHandler.UpdateStatus)

	// Cart and checkout
	products.Post("/cart", middleware.RequireAuth(), cartHandler.AddToCart)
	products.Get("/cart/:user_id", middleware.RequireAuth(), cartHandler.GetCart)
	products.Delete("/cart/:cart_id", middleware.RequireAuth(), cartHandler.RemoveFromCart)
	products.Post("/cart/checkout", middleware.RequireAuth(), cartHandler.CheckoutSelection)
	products.Post("/cart/payment", middleware.RequireAuth(), txHandler.Checkout)

	// Admin product management
	products.Post("/create", middleware.RequireAuth(), middleware.RequireAdmin(), productHandler.CreateProduct)
	products.Post("/upload", middleware.RequireAuth(), middleware.RequireAdmin(), uploadHandler.UploadImage)

	products.Get("/:id", productHandler.GetProduct)
	products.Put("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), productHandler.UpdateProduct)
	products.Delete("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), productHandler.DeleteProduct)

	// WebSocket stock feed for the admin dashboard
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down products service...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
