package booking

import (
	"errors"
	"fmt"
	"time"

	hotelRepo "planmystay/database/repository/hotel"
	"planmystay/models"
	"planmystay/utils"

	"go.uber.org/zap"
)

// SweepExpiredRanges prunes reserved ranges whose interval has fully elapsed:
// a range is kept only while its exclusive end is strictly after today at
// midnight. Hotels are persisted only when their ledger actually shrank, so a
// second run on the same day is a no-op. Failures are isolated per hotel; one
// bad hotel never aborts the sweep. Returns how many hotels were updated.
func (s *DefaultBookingService) SweepExpiredRanges() (int, error) {
	logger := utils.GetLogger()
	today := s.today()

	hotels, err := s.HotelRepo.ListWithRanges()
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range hotels {
		changed, err := s.sweepHotel(&hotels[i], today)
		if err != nil {
			logger.Warn("sweep skipped hotel",
				zap.String("hotelID", hotels[i].ID),
				zap.Error(err),
			)
			continue
		}
		if changed {
			updated++
			s.invalidate(hotels[i].ID)
		}
	}

	logger.Info("reserved-range sweep completed",
		zap.Int("hotelsUpdated", updated),
		zap.Time("today", today),
	)
	return updated, nil
}

// sweepHotel prunes one hotel's ledger under the same version guard the
// reservation commit uses, so an interleaved approval is never lost: a stale
// version means re-read and re-evaluate against the fresh ledger.
func (s *DefaultBookingService) sweepHotel(hotel *models.Hotel, today time.Time) (bool, error) {
	for attempt := 0; attempt < maxReserveRetries; attempt++ {
		kept := keepUnexpired(hotel.BookedDates, today)
		if len(kept) == len(hotel.BookedDates) {
			return false, nil
		}

		err := s.HotelRepo.ReplaceRanges(hotel.ID, hotel.Version, kept, len(kept) == 0)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, hotelRepo.ErrStaleVersion) {
			return false, err
		}

		fresh, err := s.HotelRepo.GetByID(hotel.ID)
		if err != nil {
			return false, err
		}
		hotel = fresh
	}
	return false, fmt.Errorf("sweep hotel %s: contention retries exhausted", hotel.ID)
}

// keepUnexpired filters the ledger down to ranges still ending after today.
// Empty or malformed entries are dropped, matching the pruning contract.
func keepUnexpired(ranges [][]time.Time, today time.Time) [][]time.Time {
	kept := make([][]time.Time, 0, len(ranges))
	for _, r := range ranges {
		if _, end, ok := RangeInterval(r); ok && end.After(today) {
			kept = append(kept, r)
		}
	}
	return kept
}
