package models

import "time"

// Location describes where a hotel is situated.
type Location struct {
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
	Address string `bson:"address" json:"address"`
}

// Hotel represents a bookable hotel listing.
//
// BookedDates is the reservation ledger: each entry is one reserved stay as an
// ascending run of consecutive nights (checkout day excluded). Availability is a
// cached projection of the ledger and must be recomputed on every ledger change.
// Version guards ledger writes: every mutation of BookedDates increments it, and
// writers condition their update on the version they read.
type Hotel struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Description   string        `bson:"description" json:"description"`
	Location      Location      `bson:"location" json:"location"`
	PricePerNight float64       `bson:"price_per_night" json:"pricePerNight"`
	Amenities     []string      `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Images        []string      `bson:"images,omitempty" json:"images,omitempty"`
	Availability  bool          `bson:"availability" json:"availability"`
	BookedDates   [][]time.Time `bson:"booked_dates" json:"bookedDates"`
	Version       int64         `bson:"version" json:"-"`
	CreatedBy     string        `bson:"created_by" json:"createdBy"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}
