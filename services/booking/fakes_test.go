package booking

import (
	"sync"
	"time"

	hotelRepo "planmystay/database/repository/hotel"
	"planmystay/models"
)

// fakeHotelRepo is an in-memory HotelRepository with the same version-guarded
// write semantics as the mongo implementation, so contention behaves the same.
type fakeHotelRepo struct {
	mu     sync.Mutex
	hotels map[string]*models.Hotel
}

func newFakeHotelRepo(hotels ...*models.Hotel) *fakeHotelRepo {
	repo := &fakeHotelRepo{hotels: make(map[string]*models.Hotel)}
	for _, h := range hotels {
		repo.hotels[h.ID] = copyHotel(h)
	}
	return repo
}

func copyHotel(h *models.Hotel) *models.Hotel {
	cp := *h
	cp.BookedDates = copyRanges(h.BookedDates)
	return &cp
}

func copyRanges(ranges [][]time.Time) [][]time.Time {
	cp := make([][]time.Time, len(ranges))
	for i, r := range ranges {
		cp[i] = append([]time.Time(nil), r...)
	}
	return cp
}

func (f *fakeHotelRepo) Create(h *models.Hotel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hotels[h.ID] = copyHotel(h)
	return nil
}

func (f *fakeHotelRepo) GetByID(id string) (*models.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hotels[id]
	if !ok {
		return nil, models.ErrHotelNotFound
	}
	return copyHotel(h), nil
}

func (f *fakeHotelRepo) Update(h *models.Hotel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.hotels[h.ID]
	if !ok {
		return models.ErrHotelNotFound
	}
	existing.Name = h.Name
	existing.PricePerNight = h.PricePerNight
	return nil
}

func (f *fakeHotelRepo) List() ([]models.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, *copyHotel(h))
	}
	return out, nil
}

func (f *fakeHotelRepo) ListByOwner(ownerID string) ([]models.Hotel, error) {
	all, _ := f.List()
	out := all[:0]
	for _, h := range all {
		if h.CreatedBy == ownerID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHotelRepo) Search(city, state, country string) ([]models.Hotel, error) {
	return f.List()
}

func (f *fakeHotelRepo) ListWithRanges() ([]models.Hotel, error) {
	all, _ := f.List()
	out := all[:0]
	for _, h := range all {
		if len(h.BookedDates) > 0 {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHotelRepo) CommitRange(id string, version int64, nights []time.Time, availability bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hotels[id]
	if !ok || h.Version != version {
		return hotelRepo.ErrStaleVersion
	}
	h.BookedDates = append(h.BookedDates, append([]time.Time(nil), nights...))
	h.Availability = availability
	h.Version++
	return nil
}

func (f *fakeHotelRepo) ReplaceRanges(id string, version int64, ranges [][]time.Time, availability bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hotels[id]
	if !ok || h.Version != version {
		return hotelRepo.ErrStaleVersion
	}
	h.BookedDates = copyRanges(ranges)
	h.Availability = availability
	h.Version++
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository with the same conditional
// status transition as the mongo implementation.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok || b.Status != from {
		return models.ErrInvalidTransition
	}
	b.Status = to
	return nil
}

func (f *fakeBookingRepo) ListByCustomer(customerID string, today time.Time, past bool) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if past == b.CheckOut.Before(today) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) HasCompletedStay(customerID, hotelID string, today time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.CustomerID == customerID && b.HotelID == hotelID &&
			b.Status == models.BookingConfirmed && b.CheckOut.Before(today) {
			return true, nil
		}
	}
	return false, nil
}

// fixedClock pins "today" for deterministic sweeps and history classification.
type fixedClock struct {
	day time.Time
}

func (c fixedClock) Today() time.Time { return c.day }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
