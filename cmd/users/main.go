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
	"camrent-backend/pkg/database"

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
	db.AutoMigrate(&model.User{}, &model.Review{}, &model.Contact{})

	userRepo := repository.NewUserRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	// Transactions live in the shared store; the users service only reads them.
	txRepo := repository.NewTransactionRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, reviewRepo)
	txService := service.NewTransactionService(txRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	txHandler := handler.NewTransactionHandler(nil, txService)

	app := fiber.New(fiber.Config{
		AppName: "CamRent Users v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	users := app.Group("/users")

	// Public
	users.Post("/signin", authHandler.SignIn)
	users.Post("/", userHandler.CreateUser)
	users.Get("/reviews", userHandler.GetReviews)
	users.Post("/reviews", userHandler.CreateReview)
	users.Post("/contact", userHandler.CreateContact)

	// Authenticated
	users.Get("/", middleware.RequireAuth(), middleware.RequireAdmin(), userHandler.GetUsers)
	users.Get("/transaction/:id", middleware.RequireAuth(), txHandler.GetUserTransactions)
	users.Get("/:id", middleware.RequireAuth(), userHandler.GetUser)
	users.Put("/:id", middleware.RequireAuth(), userHandler.UpdateUser)
	users.Delete("/:id", middleware.RequireAuth(), userHandler.DeleteUser)

	go func() {
		if err := app.Listen(cfg.UsersHTTPAddr); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down users service...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
