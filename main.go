package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Kiptoos/alx-travel-app-0x01/config"
	"github.com/Kiptoos/alx-travel-app-0x01/jobs"
	"github.com/Kiptoos/alx-travel-app-0x01/models"
	"github.com/Kiptoos/alx-travel-app-0x01/routes"
	"github.com/Kiptoos/alx-travel-app-0x01/services"
	"github.com/Kiptoos/alx-travel-app-0x01/services/logger"
	"github.com/Kiptoos/alx-travel-app-0x01/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetBookingExpirer(bookingService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	utils.LogInfo("server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
