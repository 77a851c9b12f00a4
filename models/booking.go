package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	// BookingCompleted is assigned on the read side only, when a confirmed
	// booking's checkout date has elapsed. No write path sets it.
	BookingCompleted BookingStatus = "Completed"
)

// Booking represents a stay request against a hotel.
// It is created Pending and touches the hotel's reservation ledger only when
// the hotel owner approves it.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	HotelID    string        `bson:"hotel_id" json:"hotelId"`
	CustomerID string        `bson:"customer_id" json:"customerId"`
	CheckIn    time.Time     `bson:"check_in" json:"checkIn"`
	CheckOut   time.Time     `bson:"check_out" json:"checkOut"`
	TotalPrice float64       `bson:"total_price" json:"totalPrice"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}
