package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wwa-backend/config"
	"wwa-backend/models"
	"wwa-backend/routes"
	"wwa-backend/seed"
	"wwa-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Park{},
		&models.Booking{},
		&models.Message{},
		&models.ReminderLog{},
	)

	status, err := seed.Run(config.DB)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if status == seed.AlreadySeeded {
		log.Println("Database already seeded")
	} else {
		log.Println("Database seeded")
	}
}

func main() {
	// Visit reminders only run when Twilio is configured
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		services.NewReminderService(config.DB).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
