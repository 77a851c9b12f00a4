package booking

import (
	"sync"
	"testing"
	"time"

	"planmystay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerID = "admin-1"

func newTestService(hotels ...*models.Hotel) (*DefaultBookingService, *fakeHotelRepo, *fakeBookingRepo) {
	hotelRepo := newFakeHotelRepo(hotels...)
	bookingRepo := newFakeBookingRepo()
	svc := &DefaultBookingService{
		HotelRepo:   hotelRepo,
		BookingRepo: bookingRepo,
		Clock:       fixedClock{day: date(2024, time.January, 1)},
	}
	return svc, hotelRepo, bookingRepo
}

func testHotel() *models.Hotel {
	return &models.Hotel{
		ID:            "h1",
		Name:          "Seaside Inn",
		PricePerNight: 100,
		Availability:  true,
		CreatedBy:     ownerID,
	}
}

func TestCreateBooking(t *testing.T) {
	svc, hotels, _ := newTestService(testHotel())

	booking, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, float64(300), booking.TotalPrice)
	assert.NotEmpty(t, booking.ID)

	// Creation never reserves dates.
	hotel, err := hotels.GetByID("h1")
	require.NoError(t, err)
	assert.Empty(t, hotel.BookedDates)
	assert.True(t, hotel.Availability)
}

func TestCreateBooking_HotelNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking("missing", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	assert.ErrorIs(t, err, models.ErrHotelNotFound)
}

func TestCreateBooking_InvalidRange(t *testing.T) {
	svc, _, _ := newTestService(testHotel())

	_, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 13), date(2024, time.January, 13))
	assert.ErrorIs(t, err, models.ErrInvalidRange)
}

func TestApproveBooking(t *testing.T) {
	svc, hotels, _ := newTestService(testHotel())

	booking, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	approved, updatedHotel, err := svc.ApproveBooking(booking.ID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, models.BookingConfirmed, approved.Status)
	assert.False(t, updatedHotel.Availability)
	require.Len(t, updatedHotel.BookedDates, 1)
	assert.Equal(t, []time.Time{
		date(2024, time.January, 10),
		date(2024, time.January, 11),
		date(2024, time.January, 12),
	}, updatedHotel.BookedDates[0])

	// The committed state is persisted, not just returned.
	stored, err := hotels.GetByID("h1")
	require.NoError(t, err)
	require.Len(t, stored.BookedDates, 1)
	assert.False(t, stored.Availability)
}

func TestApproveBooking_RangeConflict(t *testing.T) {
	svc, hotels, _ := newTestService(testHotel())

	first, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)
	_, _, err = svc.ApproveBooking(first.ID, ownerID)
	require.NoError(t, err)

	// Creation never checks overlap; the conflict surfaces at approval.
	second, err := svc.CreateBooking("h1", "cust-2", date(2024, time.January, 12), date(2024, time.January, 14))
	require.NoError(t, err)

	_, _, err = svc.ApproveBooking(second.ID, ownerID)
	assert.ErrorIs(t, err, models.ErrRangeConflict)

	// The losing booking stays Pending and the ledger is unchanged.
	stored, err := svc.BookingRepo.GetByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)

	hotel, err := hotels.GetByID("h1")
	require.NoError(t, err)
	assert.Len(t, hotel.BookedDates, 1)
}

func TestApproveBooking_AdjacentRangesBothConfirm(t *testing.T) {
	svc, hotels, _ := newTestService(testHotel())

	first, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)
	_, _, err = svc.ApproveBooking(first.ID, ownerID)
	require.NoError(t, err)

	// Check-in on the first booking's checkout day is not a conflict.
	second, err := svc.CreateBooking("h1", "cust-2", date(2024, time.January, 13), date(2024, time.January, 15))
	require.NoError(t, err)
	_, _, err = svc.ApproveBooking(second.ID, ownerID)
	require.NoError(t, err)

	hotel, err := hotels.GetByID("h1")
	require.NoError(t, err)
	assert.Len(t, hotel.BookedDates, 2)
}

func TestApproveBooking_NotAuthorized(t *testing.T) {
	svc, _, _ := newTestService(testHotel())

	booking, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	_, _, err = svc.ApproveBooking(booking.ID, "someone-else")
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
}

func TestApproveBooking_NotFound(t *testing.T) {
	svc, _, _ := newTestService(testHotel())

	_, _, err := svc.ApproveBooking("missing", ownerID)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestApproveBooking_AlreadyModerated(t *testing.T) {
	svc, _, _ := newTestService(testHotel())

	booking, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	_, _, err = svc.ApproveBooking(booking.ID, ownerID)
	require.NoError(t, err)

	_, _, err = svc.ApproveBooking(booking.ID, ownerID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestDenyBooking(t *testing.T) {
	svc, hotels, _ := newTestService(testHotel())

	booking, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	denied, err := svc.DenyBooking(booking.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, denied.Status)

	// Denial never touches the ledger.
	hotel, err := hotels.GetByID("h1")
	require.NoError(t, err)
	assert.Empty(t, hotel.BookedDates)
	assert.True(t, hotel.Availability)
}

func TestDenyBooking_AlreadyModerated(t *testing.T) {
	svc, _, _ := newTestService(testHotel())

	booking, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	_, err = svc.DenyBooking(booking.ID, ownerID)
	require.NoError(t, err)

	_, err = svc.DenyBooking(booking.ID, ownerID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestConcurrentApprovals_ExactlyOneWins(t *testing.T) {
	svc, hotels, _ := newTestService(testHotel())

	first, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)
	second, err := svc.CreateBooking("h1", "cust-2", date(2024, time.January, 11), date(2024, time.January, 14))
	require.NoError(t, err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, errs[0] = svc.ApproveBooking(first.ID, ownerID)
	}()
	go func() {
		defer wg.Done()
		_, _, errs[1] = svc.ApproveBooking(second.ID, ownerID)
	}()
	wg.Wait()

	winners, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case assert.ErrorIs(t, err, models.ErrRangeConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, winners, "exactly one approval must succeed")
	assert.Equal(t, 1, conflicts, "the other must observe a range conflict")

	hotel, err := hotels.GetByID("h1")
	require.NoError(t, err)
	assert.Len(t, hotel.BookedDates, 1)
	assert.False(t, hotel.Availability)
}

func TestHistory_ClassifiesElapsedConfirmedAsCompleted(t *testing.T) {
	svc, _, bookings := newTestService(testHotel())
	svc.Clock = fixedClock{day: date(2024, time.February, 1)}

	past := &models.Booking{
		ID:         "b-past",
		HotelID:    "h1",
		CustomerID: "cust-1",
		CheckIn:    date(2024, time.January, 10),
		CheckOut:   date(2024, time.January, 13),
		Status:     models.BookingConfirmed,
	}
	require.NoError(t, bookings.Create(past))

	history, err := svc.History("cust-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.BookingCompleted, history[0].Status)

	// Classification is a projection; the stored record is untouched.
	stored, err := bookings.GetByID("b-past")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, stored.Status)
}

func TestPendingForOwner_FiltersByOwnership(t *testing.T) {
	other := testHotel()
	other.ID = "h2"
	other.CreatedBy = "admin-2"
	svc, _, _ := newTestService(testHotel(), other)

	mine, err := svc.CreateBooking("h1", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)
	_, err = svc.CreateBooking("h2", "cust-1", date(2024, time.January, 10), date(2024, time.January, 13))
	require.NoError(t, err)

	pending, err := svc.PendingForOwner(ownerID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, mine.ID, pending[0].Booking.ID)
	assert.Equal(t, "h1", pending[0].Hotel.ID)
}
