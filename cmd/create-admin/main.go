package main

import (
	"flag"
	"log"

	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
	"camrent-backend/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds an admin account so a fresh deployment has someone who can manage
// the catalog.
func main() {
	email := flag.String("email", "admin@camrent.local", "admin email")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "Administrator", "admin full name")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: create-admin -email <email> -password <password>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	userRepo := repository.NewUserRepo(db)

	if existing, err := userRepo.FindByEmail(*email); err == nil {
		log.Fatalf("user %s already exists (id=%d)", existing.Email, existing.ID)
	}

	admin := &model.User{
		FullName: *name,
		Email:    *email,
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword(*password); err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("Admin user created: %s (id=%d)", admin.Email, admin.ID)
}
