package main

import (
	"log"

	"aeropartner/config"
	authController "aeropartner/controllers/auth"
	courseController "aeropartner/controllers/course"
	documentController "aeropartner/controllers/document"
	enrollmentController "aeropartner/controllers/enrollment"
	eventController "aeropartner/controllers/event"
	partnerController "aeropartner/controllers/partner"
	studentController "aeropartner/controllers/student"
	"aeropartner/database"
	"aeropartner/routers/authRoutes"
	"aeropartner/routers/courseRoutes"
	"aeropartner/routers/enrollmentRoutes"
	"aeropartner/routers/eventRoutes"
	"aeropartner/routers/partnerRoutes"
	"aeropartner/routers/studentRoutes"
	"aeropartner/storage"
	"aeropartner/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db := database.Connect(config.AppConfig)
	st := storage.New(db)

	identity := utils.NewIdentityClient(config.AppConfig.IdentityProviderURL)
	mailer := utils.NewSendgridMailer(
		config.AppConfig.SendgridApiKey,
		config.AppConfig.AppName,
		config.AppConfig.EmailSender,
	)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(st, identity))
	partnerRoutes.SetupPartnerRoutes(app, partnerController.New(st), documentController.New(st))
	courseRoutes.SetupCourseRoutes(app, courseController.New(st))
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentController.New(st, mailer))
	studentRoutes.SetupStudentRoutes(app, studentController.New(st))
	eventRoutes.SetupEventRoutes(app, eventController.New(st))

	// Nightly partner counter reconciliation
	utils.InitializeStatsScheduler(st, config.AppConfig.StatsCronSpec)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
