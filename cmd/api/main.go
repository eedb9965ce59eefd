package main

import (
	"log"
	"time"

	config "github.com/kentanne/CCSPals-sub001/configs"
	"github.com/kentanne/CCSPals-sub001/database"
	"github.com/kentanne/CCSPals-sub001/handlers"
	"github.com/kentanne/CCSPals-sub001/jobs"
	"github.com/kentanne/CCSPals-sub001/middleware"
	"github.com/kentanne/CCSPals-sub001/notifications"
	"github.com/kentanne/CCSPals-sub001/routes"
	"github.com/kentanne/CCSPals-sub001/services"
	"github.com/kentanne/CCSPals-sub001/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedUsers()
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("*/10 * * * *", jobs.CompletePastSchedules)
	go c.Start()
	log.Println("✅ Cron job for schedule completion scheduled successfully.")

	scheduleStore := store.NewScheduleStore(database.DB)
	feedbackStore := store.NewFeedbackStore(database.DB)
	userStore := store.NewUserStore(database.DB)

	scheduleService := services.NewScheduleService(scheduleStore, userStore, notifications.SendEmail)
	feedbackService := services.NewFeedbackService(feedbackStore, scheduleStore, userStore, notifications.SendEmail)
	directoryService := services.NewDirectoryService(config.Config("DIRECTORY_API_URL"))

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	protected := middleware.Protected(config.Config("JWT_SECRET"))

	app := fiber.New(fiber.Config{
		AppName:       "CCSPals API",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to CCSPals API",
		})
	})

	routes.ScheduleRoutes(app, scheduleHandler, protected)
	routes.FeedbackRoutes(app, feedbackHandler, protected)
	routes.DirectoryRoutes(app, directoryHandler, protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
