// Command admin_seed creates the initial administrator account. Exits
// without changes when the account already exists.
package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"bankcards/internal/config"
	"bankcards/internal/models"
	"bankcards/internal/repositories"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)

	if _, err := userRepo.GetByEmail(adminEmail); err == nil {
		log.Println("admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}

	admin := &models.User{
		Email:     adminEmail,
		Password:  string(hashedPassword),
		FirstName: os.Getenv("ADMIN_FIRST_NAME"),
		LastName:  os.Getenv("ADMIN_LAST_NAME"),
		Role:      models.RoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal("failed to create admin user:", err)
	}

	log.Printf("admin user created with ID %d", admin.ID)
}
