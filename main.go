package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kajtekw/restaurant-manager/config"
	"github.com/kajtekw/restaurant-manager/models"
	"github.com/kajtekw/restaurant-manager/router"
	"github.com/kajtekw/restaurant-manager/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	// A missing signing secret is a fatal configuration error, not
	// something to fall back from.
	if err := utils.SetJWTSecret(cfg.JWTSecret); err != nil {
		utils.ErrorLogger.Fatalf("Refusing to start: %v (set JWT_SECRET)", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	r := router.SetupRouter(db, router.Options{
		CORSOrigin: cfg.CORSOrigin,
		StaticDir:  cfg.StaticDir,
	})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Reservation{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
