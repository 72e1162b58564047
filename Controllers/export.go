package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"Planify/Gantt"
	"Planify/Models"
)

// bookingsToExcel renders the booking collection into an xlsx workbook
func bookingsToExcel(bookings []Models.Booking) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Booking ID", "Vehicle", "Start Date", "End Date",
		"Start Time", "End Time", "Progress", "Color", "Label",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, booking := range bookings {
		row := rowIndex + 2

		label := booking.Label
		if label == "" {
			label = Gantt.TaskLabel(booking.Name, booking.StartTime, booking.EndTime)
		}

		values := []interface{}{
			booking.BookingID,
			booking.Name,
			booking.Debut.Format("2006-01-02"),
			booking.Fin.Format("2006-01-02"),
			booking.StartTime,
			booking.EndTime,
			booking.Progress,
			booking.Color,
			label,
		}

		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 18)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}

	return &buf, nil
}

// ExportBookings downloads the whole booking collection as an Excel file
func (c *BookingController) ExportBookings(ctx *fiber.Ctx) error {
	var bookings []Models.Booking
	if err := c.DB.Find(&bookings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	excelBuffer, err := bookingsToExcel(bookings)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to export bookings: %v", err),
		})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("bookings_export_%s.xlsx", timestamp)

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Set("Content-Length", fmt.Sprintf("%d", excelBuffer.Len()))

	return ctx.Send(excelBuffer.Bytes())
}
