package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "planmystay/database/repository/booking"
	hotelRepo "planmystay/database/repository/hotel"
	"planmystay/models"
	"planmystay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReserveRetries bounds the optimistic-concurrency loop in reserve.
const maxReserveRetries = 5

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	HotelRepo   hotelRepo.HotelRepository
	BookingRepo bookingRepo.BookingRepository
	Clock       Clock

	// InvalidateHotel, when set, drops the cached copy of a hotel after its
	// ledger changes. Optional so tests can run without Redis.
	InvalidateHotel func(hotelID string)
}

func (s *DefaultBookingService) today() time.Time {
	if s.Clock != nil {
		return s.Clock.Today()
	}
	return SystemClock{}.Today()
}

func (s *DefaultBookingService) invalidate(hotelID string) {
	if s.InvalidateHotel != nil {
		s.InvalidateHotel(hotelID)
	}
}

// CreateBooking validates the date span, prices the stay, and records a
// Pending booking. No hold is placed on the hotel's ledger.
func (s *DefaultBookingService) CreateBooking(hotelID, customerID string, checkIn, checkOut time.Time) (*models.Booking, error) {
	hotel, err := s.HotelRepo.GetByID(hotelID)
	if err != nil {
		return nil, err
	}

	if _, err := BuildNightRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		HotelID:    hotel.ID,
		CustomerID: customerID,
		CheckIn:    Day(checkIn),
		CheckOut:   Day(checkOut),
		TotalPrice: float64(Nights(checkIn, checkOut)) * hotel.PricePerNight,
		Status:     models.BookingPending,
	}
	if err := s.BookingRepo.Create(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("hotelID", hotel.ID),
		zap.Float64("totalPrice", booking.TotalPrice),
	)
	return booking, nil
}

// ApproveBooking transitions a pending booking to Confirmed, committing its
// night range into the hotel's ledger. The overlap check is re-run against the
// current ledger on every commit attempt: two pending bookings for overlapping
// dates can coexist, and only one may win approval.
func (s *DefaultBookingService) ApproveBooking(bookingID, actorID string) (*models.Booking, *models.Hotel, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, nil, err
	}
	hotel, err := s.HotelRepo.GetByID(booking.HotelID)
	if err != nil {
		return nil, nil, err
	}
	if hotel.CreatedBy != actorID {
		return nil, nil, models.ErrNotAuthorized
	}
	if booking.Status != models.BookingPending {
		return nil, nil, models.ErrInvalidTransition
	}

	nights, err := BuildNightRange(booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, nil, err
	}

	hotel, err = s.reserve(hotel, nights)
	if err != nil {
		return nil, nil, err
	}
	s.invalidate(hotel.ID)

	if err := s.BookingRepo.UpdateStatus(booking.ID, models.BookingPending, models.BookingConfirmed); err != nil {
		// A concurrent moderation won the booking itself. Put the range back
		// so the ledger does not hold dates for a booking that never confirmed.
		if errors.Is(err, models.ErrInvalidTransition) {
			s.releaseRange(hotel.ID, nights)
		}
		return nil, nil, err
	}
	booking.Status = models.BookingConfirmed

	utils.GetLogger().Info("booking approved",
		zap.String("bookingID", booking.ID),
		zap.String("hotelID", hotel.ID),
	)
	return booking, hotel, nil
}

// reserve commits the night range under per-hotel serialization: check overlap
// against the ledger as read, then write conditionally on the version that was
// read. A stale version means a concurrent commit or sweep landed first, so
// re-read and re-check. Callers see ErrRangeConflict only for genuine overlap.
func (s *DefaultBookingService) reserve(hotel *models.Hotel, nights []time.Time) (*models.Hotel, error) {
	start, end, ok := RangeInterval(nights)
	if !ok {
		return nil, models.ErrInvalidRange
	}

	for attempt := 0; attempt < maxReserveRetries; attempt++ {
		if RangeConflicts(start, end, hotel.BookedDates) {
			return nil, models.ErrRangeConflict
		}

		err := s.HotelRepo.CommitRange(hotel.ID, hotel.Version, nights, false)
		if err == nil {
			hotel.BookedDates = append(hotel.BookedDates, nights)
			hotel.Availability = false
			hotel.Version++
			return hotel, nil
		}
		if !errors.Is(err, hotelRepo.ErrStaleVersion) {
			return nil, fmt.Errorf("commit range: %w", err)
		}

		hotel, err = s.HotelRepo.GetByID(hotel.ID)
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("reserve hotel %s: contention retries exhausted", hotel.ID)
}

// releaseRange removes a just-committed night run from the ledger. Best
// effort: a failure here is logged, not surfaced, since the approval itself
// has already failed.
func (s *DefaultBookingService) releaseRange(hotelID string, nights []time.Time) {
	start, end, ok := RangeInterval(nights)
	if !ok {
		return
	}

	for attempt := 0; attempt < maxReserveRetries; attempt++ {
		hotel, err := s.HotelRepo.GetByID(hotelID)
		if err != nil {
			break
		}
		kept := make([][]time.Time, 0, len(hotel.BookedDates))
		for _, r := range hotel.BookedDates {
			rs, re, ok := RangeInterval(r)
			if ok && rs.Equal(start) && re.Equal(end) {
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) == len(hotel.BookedDates) {
			return
		}
		err = s.HotelRepo.ReplaceRanges(hotelID, hotel.Version, kept, len(kept) == 0)
		if err == nil {
			s.invalidate(hotelID)
			return
		}
		if !errors.Is(err, hotelRepo.ErrStaleVersion) {
			break
		}
	}
	utils.GetLogger().Error("failed to release reserved range", zap.String("hotelID", hotelID))
}

// DenyBooking transitions a pending booking to Cancelled. The hotel ledger is
// untouched: the denied range was never reserved.
func (s *DefaultBookingService) DenyBooking(bookingID, actorID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.HotelRepo.GetByID(booking.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel.CreatedBy != actorID {
		return nil, models.ErrNotAuthorized
	}
	if booking.Status != models.BookingPending {
		return nil, models.ErrInvalidTransition
	}

	if err := s.BookingRepo.UpdateStatus(booking.ID, models.BookingPending, models.BookingCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled

	utils.GetLogger().Info("booking denied",
		zap.String("bookingID", booking.ID),
		zap.String("hotelID", hotel.ID),
	)
	return booking, nil
}

// History returns the customer's elapsed bookings. Confirmed stays whose
// checkout has passed are reported as Completed; the stored record is not
// rewritten.
func (s *DefaultBookingService) History(customerID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByCustomer(customerID, s.today(), true)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].Status == models.BookingConfirmed {
			bookings[i].Status = models.BookingCompleted
		}
	}
	return bookings, nil
}

// ActiveAndUpcoming returns the customer's current and future bookings.
func (s *DefaultBookingService) ActiveAndUpcoming(customerID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByCustomer(customerID, s.today(), false)
}

// PendingForOwner returns pending bookings on hotels the admin owns.
func (s *DefaultBookingService) PendingForOwner(ownerID string) ([]OwnerBooking, error) {
	return s.listForOwner(ownerID, models.BookingPending)
}

// ConfirmedForOwner returns confirmed bookings on hotels the admin owns.
func (s *DefaultBookingService) ConfirmedForOwner(ownerID string) ([]OwnerBooking, error) {
	return s.listForOwner(ownerID, models.BookingConfirmed)
}

func (s *DefaultBookingService) listForOwner(ownerID string, status models.BookingStatus) ([]OwnerBooking, error) {
	bookings, err := s.BookingRepo.ListByStatus(status)
	if err != nil {
		return nil, err
	}

	hotels := make(map[string]*models.Hotel)
	owned := make([]OwnerBooking, 0, len(bookings))
	for _, b := range bookings {
		hotel, ok := hotels[b.HotelID]
		if !ok {
			hotel, err = s.HotelRepo.GetByID(b.HotelID)
			if err != nil {
				if errors.Is(err, models.ErrHotelNotFound) {
					continue
				}
				return nil, err
			}
			hotels[b.HotelID] = hotel
		}
		if hotel.CreatedBy != ownerID {
			continue
		}
		owned = append(owned, OwnerBooking{Booking: b, Hotel: *hotel})
	}
	return owned, nil
}
