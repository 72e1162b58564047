package Gantt

import (
	"errors"
	"fmt"
	"time"

	"Planify/Models"
)

// ErrBookingNotFound is returned when an edit references an id that is not in
// the collection. Unlike a bad import line this is not skipped silently: the
// widget only ever edits ids it was handed, so a miss means the caller's view
// and the store have diverged.
var ErrBookingNotFound = errors.New("booking not found")

// EditEvent is the notification the rendering widget emits after a drag or
// resize (afterTaskUpdate). Field names follow the widget's row contract.
type EditEvent struct {
	ID              string    `json:"id" validate:"required"`
	NewVisibleStart time.Time `json:"start_date" validate:"required"`
	NewDurationDays int       `json:"duration" validate:"required,min=1"`
	NewLabel        string    `json:"text"`
}

// ApplyEdit maps a widget edit back onto a booking. The new start is
// normalized to the start of its day and the end covers the whole last day.
// When the widget supplied label text it is kept verbatim; only an empty label
// is rebuilt from the booking's own stable fields, so a user-edited label is
// never overwritten by a regenerated one.
func ApplyEdit(booking Models.Booking, event EditEvent) Models.Booking {
	debut := startOfDay(event.NewVisibleStart)
	fin := endOfDay(debut.AddDate(0, 0, event.NewDurationDays-1))

	booking.Debut = debut
	booking.Fin = fin
	if event.NewLabel != "" {
		booking.Label = event.NewLabel
	} else {
		booking.Label = TaskLabel(booking.Name, booking.StartTime, booking.EndTime)
	}
	return booking
}

// ReconcileEdit locates the edited booking in the collection and returns the
// updated record. The collection itself is left untouched; persistence is the
// caller's concern.
func ReconcileEdit(bookings []Models.Booking, event EditEvent) (Models.Booking, error) {
	for _, booking := range bookings {
		if booking.BookingID == event.ID {
			return ApplyEdit(booking, event), nil
		}
	}
	return Models.Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, event.ID)
}
