package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Planify/Controllers"
	"Planify/Models"
	"Planify/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	bookingController := Controllers.NewBookingController(db)

	api := app.Group("/api")

	// Auth routes
	api.Post("/Login", Controllers.Login)
	api.Post("/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)
	api.Get("/User", Controllers.User)
	api.Post("/Logout", Controllers.Logout)

	// Booking routes
	bookings := api.Group("/bookings", middleware.Verify(1))
	bookings.Get("/", bookingController.GetBookings)
	bookings.Put("/", bookingController.ReplaceBookings)

	// Helper routes - place these BEFORE the ID routes to avoid conflicts
	bookings.Get("/export", bookingController.ExportBookings)
	bookings.Post("/upload", bookingController.UploadSchedule)

	// ID-based routes
	bookings.Put("/:id", bookingController.UpdateBooking)
	bookings.Delete("/:id", bookingController.DeleteBooking)

	// Gantt board routes: window projection plus the widget's edit event
	gantt := api.Group("/gantt", middleware.Verify(1))
	gantt.Get("/rows", bookingController.GetGanttRows)
	gantt.Post("/task-update", bookingController.TaskUpdate)

	// Planning board page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("planning", fiber.Map{
			"Title": "Vehicle Planning Board",
		})
	})
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))

	allowOrigins := os.Getenv("CORS_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,  // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, Models.DB)
	app.Static("/static", "static/")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
