package bookingRepo

import (
	"time"

	"planmystay/models"
)

// BookingRepository defines persistence operations for booking records.
//
// UpdateStatus is conditional on the current status, which makes the
// Pending → Confirmed/Cancelled transition a single atomic compare-and-set:
// two moderators racing on the same booking cannot both win.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	UpdateStatus(id string, from, to models.BookingStatus) error

	// ListByCustomer returns a customer's bookings whose checkout falls
	// before (past=true) or on/after (past=false) the given day.
	ListByCustomer(customerID string, today time.Time, past bool) ([]models.Booking, error)

	// ListByStatus returns all bookings in the given state, newest check-in first.
	ListByStatus(status models.BookingStatus) ([]models.Booking, error)

	// HasCompletedStay reports whether the customer has a confirmed booking
	// at the hotel whose checkout precedes the given day. Gates review
	// submission; cancelled bookings never count.
	HasCompletedStay(customerID, hotelID string, today time.Time) (bool, error)
}
