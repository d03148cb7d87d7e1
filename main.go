package main

import (
	"log"

	"shopfit/config"
	"shopfit/database"
	"shopfit/routers/authRoutes"
	"shopfit/routers/cartRoutes"
	"shopfit/routers/catalogRoutes"
	"shopfit/routers/orderRoutes"
	"shopfit/routers/planRoutes"
	"shopfit/routers/userRoutes"
	"shopfit/routers/webhookRoutes"
	"shopfit/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization,Stripe-Signature",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	planRoutes.SetupPlanRoutes(app)
	webhookRoutes.SetupWebhookRoutes(app)

	utils.InitializeSubscriptionScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
