package booking

import (
	"time"

	"planmystay/models"
)

// OwnerBooking pairs a booking with its hotel for admin moderation views.
type OwnerBooking struct {
	Booking models.Booking `json:"booking"`
	Hotel   models.Hotel   `json:"hotel"`
}

// BookingService governs the booking lifecycle and the hotel reservation ledger.
type BookingService interface {
	// CreateBooking records a Pending stay request. The hotel's ledger is not
	// touched: dates are reserved only when the owner approves.
	CreateBooking(hotelID, customerID string, checkIn, checkOut time.Time) (*models.Booking, error)

	// ApproveBooking confirms a pending booking, committing its night range
	// into the hotel's ledger if no reserved range overlaps it.
	ApproveBooking(bookingID, actorID string) (*models.Booking, *models.Hotel, error)

	// DenyBooking cancels a pending booking. The ledger is never touched.
	DenyBooking(bookingID, actorID string) (*models.Booking, error)

	// History returns the customer's elapsed bookings, newest checkout first,
	// with elapsed Confirmed stays classified as Completed.
	History(customerID string) ([]models.Booking, error)

	// ActiveAndUpcoming returns the customer's current and future bookings.
	ActiveAndUpcoming(customerID string) ([]models.Booking, error)

	// PendingForOwner returns pending bookings on hotels the admin owns.
	PendingForOwner(ownerID string) ([]OwnerBooking, error)

	// ConfirmedForOwner returns confirmed bookings on hotels the admin owns.
	ConfirmedForOwner(ownerID string) ([]OwnerBooking, error)

	// SweepExpiredRanges prunes fully-elapsed reserved ranges from every
	// hotel and returns how many hotels were updated.
	SweepExpiredRanges() (int, error)
}
