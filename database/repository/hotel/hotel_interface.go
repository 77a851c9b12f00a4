package hotelRepo

import (
	"errors"
	"time"

	"planmystay/models"
)

// ErrStaleVersion reports that a guarded ledger write matched no document:
// another writer committed first and the caller must re-read and retry.
var ErrStaleVersion = errors.New("hotel version changed since read")

// HotelRepository defines persistence operations for hotel listings.
//
// CommitRange and ReplaceRanges are version-guarded: they apply only if the
// stored document still carries the version the caller read, and bump it.
// This is the per-hotel serialization point for the reservation ledger.
type HotelRepository interface {
	Create(hotel *models.Hotel) error
	GetByID(id string) (*models.Hotel, error)
	Update(hotel *models.Hotel) error
	List() ([]models.Hotel, error)
	ListByOwner(ownerID string) ([]models.Hotel, error)
	Search(city, state, country string) ([]models.Hotel, error)

	// ListWithRanges returns every hotel that has at least one reserved range,
	// projected down to the fields the sweep needs.
	ListWithRanges() ([]models.Hotel, error)

	// CommitRange appends one night run to the ledger and sets availability,
	// guarded on version.
	CommitRange(id string, version int64, nights []time.Time, availability bool) error

	// ReplaceRanges swaps the whole ledger and sets availability, guarded on
	// version.
	ReplaceRanges(id string, version int64, ranges [][]time.Time, availability bool) error
}
