package hotel

import (
	"context"
	"time"

	hotelRepo "planmystay/database/repository/hotel"
	"planmystay/models"
	"planmystay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cache abstracts the read-through hotel cache so the service can run without
// Redis in tests. All methods are best effort.
type Cache interface {
	Get(ctx context.Context, id string) *models.Hotel
	Set(ctx context.Context, hotel *models.Hotel)
	Drop(ctx context.Context, id string)
}

// HotelService manages hotel listings.
type HotelService interface {
	CreateHotel(ownerID string, hotel *models.Hotel) (*models.Hotel, error)
	UpdateHotel(actorID string, hotel *models.Hotel) (*models.Hotel, error)
	GetHotel(id string) (*models.Hotel, error)
	ListHotels() ([]models.Hotel, error)
	ListMyHotels(ownerID string) ([]models.Hotel, error)
	SearchHotels(city, state, country string) ([]models.Hotel, error)
}

// DefaultHotelService is the production implementation of HotelService.
type DefaultHotelService struct {
	Repo  hotelRepo.HotelRepository
	Cache Cache
}

// CreateHotel registers a new listing owned by the given admin. New listings
// start available with an empty reservation ledger.
func (s *DefaultHotelService) CreateHotel(ownerID string, hotel *models.Hotel) (*models.Hotel, error) {
	hotel.ID = uuid.New().String()
	hotel.CreatedBy = ownerID
	hotel.Availability = true
	hotel.BookedDates = [][]time.Time{}
	hotel.Version = 0

	if err := s.Repo.Create(hotel); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("hotel created",
		zap.String("hotelID", hotel.ID),
		zap.String("ownerID", ownerID),
	)
	return hotel, nil
}

// UpdateHotel modifies listing fields. Only the owning admin may update, and
// the reservation ledger is never writable through this path.
func (s *DefaultHotelService) UpdateHotel(actorID string, hotel *models.Hotel) (*models.Hotel, error) {
	existing, err := s.Repo.GetByID(hotel.ID)
	if err != nil {
		return nil, err
	}
	if existing.CreatedBy != actorID {
		return nil, models.ErrNotAuthorized
	}

	if err := s.Repo.Update(hotel); err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Drop(context.Background(), hotel.ID)
	}
	return s.Repo.GetByID(hotel.ID)
}

// GetHotel returns one listing, read through the cache when available.
func (s *DefaultHotelService) GetHotel(id string) (*models.Hotel, error) {
	ctx := context.Background()
	if s.Cache != nil {
		if hotel := s.Cache.Get(ctx, id); hotel != nil {
			return hotel, nil
		}
	}

	hotel, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, hotel)
	}
	return hotel, nil
}

// ListHotels returns all listings.
func (s *DefaultHotelService) ListHotels() ([]models.Hotel, error) {
	return s.Repo.List()
}

// ListMyHotels returns the listings owned by the given admin.
func (s *DefaultHotelService) ListMyHotels(ownerID string) ([]models.Hotel, error) {
	return s.Repo.ListByOwner(ownerID)
}

// SearchHotels returns listings matching the given location.
func (s *DefaultHotelService) SearchHotels(city, state, country string) ([]models.Hotel, error) {
	return s.Repo.Search(city, state, country)
}
