package Controllers

import (
	"errors"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Planify/Gantt"
	"Planify/Models"
	"Planify/Parser"
)

var validate = validator.New()

// BookingController handles booking-related API endpoints
type BookingController struct {
	DB *gorm.DB
}

// NewBookingController creates a new BookingController
func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// GetBookings retrieves all bookings with debut/fin as ISO-8601 strings
func (c *BookingController) GetBookings(ctx *fiber.Ctx) error {
	var bookings []Models.Booking
	result := c.DB.Find(&bookings)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	return ctx.JSON(bookings)
}

// ReplaceBookings overwrites the whole collection. Used after importing a
// fresh schedule log or when the client pushes its local state back.
func (c *BookingController) ReplaceBookings(ctx *fiber.Ctx) error {
	var bookings []Models.Booking
	if err := ctx.BodyParser(&bookings); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.replaceCollection(bookings); err != nil {
		log.Println("Failed to replace bookings:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to replace bookings"})
	}

	return ctx.JSON(fiber.Map{"message": "Bookings replaced successfully", "count": len(bookings)})
}

// UpdateBookingInput is the payload of the single-record update endpoint.
type UpdateBookingInput struct {
	Debut time.Time `json:"debut" validate:"required"`
	Fin   time.Time `json:"fin" validate:"required,gtefield=Debut"`
	Label string    `json:"label"`
}

// UpdateBooking updates one booking's placement and label by its id
func (c *BookingController) UpdateBooking(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var booking Models.Booking
	result := c.DB.Where("booking_id = ?", id).First(&booking)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var input UpdateBookingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking.Debut = input.Debut
	booking.Fin = input.Fin
	if input.Label != "" {
		booking.Label = input.Label
	}
	if err := c.DB.Save(&booking).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	return ctx.JSON(booking)
}

// DeleteBooking removes one booking; the widget's taskDeleted path.
func (c *BookingController) DeleteBooking(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var booking Models.Booking
	result := c.DB.Where("booking_id = ?", id).First(&booking)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	c.DB.Delete(&booking)

	return ctx.JSON(fiber.Map{"message": "Booking deleted successfully"})
}

// UploadSchedule imports an exported schedule log (.txt, pipe-delimited).
// Malformed lines are skipped and reported back; a single bad line never
// aborts the import.
func (c *BookingController) UploadSchedule(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided. Please upload a schedule log."})
	}

	fileExt := strings.ToLower(filepath.Ext(file.Filename))
	if fileExt != ".txt" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file type. Please upload a .txt schedule log."})
	}

	src, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file."})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read uploaded file."})
	}

	bookings, diagnostics := Parser.ParseSchedule(string(content))
	if err := c.replaceCollection(bookings); err != nil {
		log.Println("Failed to store imported bookings:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store imported bookings"})
	}

	return ctx.JSON(fiber.Map{
		"imported":    len(bookings),
		"skipped":     len(diagnostics),
		"diagnostics": diagnostics,
	})
}

// GetGanttRows projects the collection onto the requested window and returns
// the rows the rendering widget consumes. Query parameters: date (YYYY-MM-DD),
// days or weeks, and weekMode to snap the start to the Monday of its week.
func (c *BookingController) GetGanttRows(ctx *fiber.Ctx) error {
	selected := time.Now().UTC().Truncate(24 * time.Hour)
	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		selected = parsed
	}

	days := 7
	if daysStr := ctx.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid days, expected a positive integer"})
		}
		days = parsed
	}
	if weeksStr := ctx.Query("weeks"); weeksStr != "" {
		parsed, err := strconv.Atoi(weeksStr)
		if err != nil || parsed < 1 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid weeks, expected a positive integer"})
		}
		days = parsed * 7
	}

	weekModeStr := ctx.Query("weekMode")
	weekMode := weekModeStr == "1" || weekModeStr == "true"

	var bookings []Models.Booking
	if err := c.DB.Find(&bookings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	window := Gantt.Window{
		StartDate: Gantt.ResolveWindowStart(selected, weekMode),
		DayCount:  days,
	}

	return ctx.JSON(fiber.Map{"data": Gantt.ClipToWindow(bookings, window)})
}

// TaskUpdate handles the widget's afterTaskUpdate event: the edit is
// reconciled against the current collection and the write-back runs in the
// background so the board never blocks on persistence.
func (c *BookingController) TaskUpdate(ctx *fiber.Ctx) error {
	var event Gantt.EditEvent
	if err := ctx.BodyParser(&event); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(event); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var bookings []Models.Booking
	if err := c.DB.Find(&bookings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	updated, err := Gantt.ReconcileEdit(bookings, event)
	if err != nil {
		if errors.Is(err, Gantt.ErrBookingNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reconcile edit"})
	}

	Models.SaveBookingAsync(updated)

	return ctx.JSON(updated)
}

func (c *BookingController) replaceCollection(bookings []Models.Booking) error {
	return c.DB.Transaction(func(tx *gorm.DB) error {
		// Hard delete so replaced ids can be reused on a later import.
		if err := tx.Unscoped().Where("1 = 1").Delete(&Models.Booking{}).Error; err != nil {
			return err
		}
		if len(bookings) == 0 {
			return nil
		}
		return tx.Create(&bookings).Error
	})
}
