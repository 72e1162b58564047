package Models

import (
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking represents one scheduled vehicle activity. Debut and Fin are the
// absolute start/end instants (Debut <= Fin); StartTime and EndTime keep the
// display clock strings from the imported schedule so labels can be rebuilt
// without touching Debut/Fin.
type Booking struct {
	gorm.Model
	BookingID string    `json:"id" gorm:"uniqueIndex;size:64"`
	Name      string    `json:"name"`
	Debut     time.Time `json:"debut"`
	Fin       time.Time `json:"fin"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Progress  float64   `json:"progress"`
	Color     string    `json:"color"`
	Label     string    `json:"label"`

	// Dependencies is carried through for the widget but never interpreted here.
	Dependencies datatypes.JSON `json:"dependencies"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// SaveBookingAsync persists an edited booking without blocking the caller.
// Failures are logged only; there is no retry and a later save for the same
// booking is not ordered against an earlier one.
func SaveBookingAsync(booking Booking) {
	go func() {
		if err := DB.Save(&booking).Error; err != nil {
			log.Printf("Failed to save booking %s: %v\n", booking.BookingID, err)
		}
	}()
}
