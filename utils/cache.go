package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"planmystay/config"
	"planmystay/models"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

const (
	hotelCachePrefix = "hotel:"
	hotelCacheTTL    = 5 * time.Minute
)

// RedisHotelCache is a read-through cache for hotel documents. Cache failures
// are treated as misses; the database stays the source of truth.
type RedisHotelCache struct {
	Client *redis.Client
}

// Get returns the cached hotel document, or nil on a miss.
func (c *RedisHotelCache) Get(ctx context.Context, id string) *models.Hotel {
	data, err := c.Client.Get(ctx, hotelCachePrefix+id).Bytes()
	if err != nil {
		return nil
	}
	var hotel models.Hotel
	if err := json.Unmarshal(data, &hotel); err != nil {
		return nil
	}
	return &hotel
}

// Set stores a hotel document with a short TTL.
func (c *RedisHotelCache) Set(ctx context.Context, hotel *models.Hotel) {
	data, err := json.Marshal(hotel)
	if err != nil {
		return
	}
	_ = c.Client.Set(ctx, hotelCachePrefix+hotel.ID, data, hotelCacheTTL).Err()
}

// Drop removes the cached copy after a ledger or listing mutation.
func (c *RedisHotelCache) Drop(ctx context.Context, id string) {
	_ = c.Client.Del(ctx, hotelCachePrefix+id).Err()
}
