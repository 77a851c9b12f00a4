package models

import "errors"

// Domain error sentinels. Services return these (possibly wrapped) and the
// HTTP layer maps them to status codes with errors.Is.
var (
	// ErrInvalidRange reports a malformed or non-positive-length date span.
	ErrInvalidRange = errors.New("check-out must be after check-in")

	// ErrRangeConflict reports that a candidate stay overlaps a range already
	// present in the hotel's reservation ledger.
	ErrRangeConflict = errors.New("selected dates overlap an existing booking")

	// ErrInvalidTransition reports a booking state-machine violation, such as
	// approving a booking that is no longer pending.
	ErrInvalidTransition = errors.New("only pending bookings can be moderated")

	// ErrNotAuthorized reports that the actor does not own the hotel listing.
	ErrNotAuthorized = errors.New("not authorized for this hotel")

	ErrHotelNotFound   = errors.New("hotel not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidCreds    = errors.New("invalid credentials")
)
