package hotelRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"planmystay/database"
	"planmystay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	repo := &MongoHotelRepo{coll: database.Collection("hotels")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create hotel indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{
			{Key: "location.city", Value: 1},
			{Key: "location.state", Value: 1},
			{Key: "location.country", Value: 1},
		}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a hotel by its unique ID.
func (r *MongoHotelRepo) GetByID(id string) (*models.Hotel, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

// CommitRange appends a night run to the reservation ledger. The filter pins
// the version read by the caller, so a concurrent commit or sweep on the same
// hotel surfaces as ErrStaleVersion instead of a silent lost update.
func (r *MongoHotelRepo) CommitRange(id string, version int64, nights []time.Time, availability bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "version": version}
	update := bson.M{
		"$push": bson.M{"booked_dates": nights},
		"$set":  bson.M{"availability": availability, "updated_at": time.Now()},
		"$inc":  bson.M{"version": 1},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to commit range for hotel %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrStaleVersion
	}
	return nil
}

// ReplaceRanges swaps the entire reservation ledger, guarded on version.
func (r *MongoHotelRepo) ReplaceRanges(id string, version int64, ranges [][]time.Time, availability bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "version": version}
	update := bson.M{
		"$set": bson.M{
			"booked_dates": ranges,
			"availability": availability,
			"updated_at":   time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to replace ranges for hotel %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrStaleVersion
	}
	return nil
}

// ListWithRanges returns hotels holding at least one reserved range, projected
// to the fields the retention sweep reads.
func (r *MongoHotelRepo) ListWithRanges() ([]models.Hotel, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"booked_dates.0": bson.M{"$exists": true}}
	opts := options.Find().SetProjection(bson.M{
		"id":           1,
		"booked_dates": 1,
		"availability": 1,
		"version":      1,
	})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels with ranges: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}
