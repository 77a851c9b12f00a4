package hotelRepo

import (
	"fmt"
	"time"

	"planmystay/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new hotel document.
func (r *MongoHotelRepo) Create(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// Update modifies the listing fields of an existing hotel document. The
// reservation ledger is deliberately excluded: it changes only through
// CommitRange and ReplaceRanges.
func (r *MongoHotelRepo) Update(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": hotel.ID}
	update := bson.M{"$set": bson.M{
		"name":            hotel.Name,
		"description":     hotel.Description,
		"location":        hotel.Location,
		"price_per_night": hotel.PricePerNight,
		"amenities":       hotel.Amenities,
		"images":          hotel.Images,
		"updated_at":      time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update hotel with id %s: %w", hotel.ID, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrHotelNotFound
	}
	return nil
}

// List returns all hotel listings.
func (r *MongoHotelRepo) List() ([]models.Hotel, error) {
	return r.find(bson.M{})
}

// ListByOwner returns the hotels created by the given admin.
func (r *MongoHotelRepo) ListByOwner(ownerID string) ([]models.Hotel, error) {
	return r.find(bson.M{"created_by": ownerID})
}

// Search returns hotels matching a city/state/country triple.
func (r *MongoHotelRepo) Search(city, state, country string) ([]models.Hotel, error) {
	return r.find(bson.M{
		"location.city":    city,
		"location.state":   state,
		"location.country": country,
	})
}

func (r *MongoHotelRepo) find(filter bson.M) ([]models.Hotel, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}
