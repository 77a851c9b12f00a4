package models

import "time"

// Review is a customer rating left after a completed stay.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	HotelID    string    `bson:"hotel_id" json:"hotelId"`
	CustomerID string    `bson:"customer_id" json:"customerId"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
