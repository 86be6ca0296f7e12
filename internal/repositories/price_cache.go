package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/shopspring/decimal"
)

// ErrCacheMiss is returned when a key is absent from the cache.
var ErrCacheMiss = errors.New("cache miss")

// PriceCacheRepository caches token prices in Redis.
type PriceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached prices
}

// NewPriceCacheRepository creates a new repository instance with the given TTL.
func NewPriceCacheRepository(client *redis.Client, expiration time.Duration) *PriceCacheRepository {
	return &PriceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPrice returns the cached price of one unit of base in quote.
func (r *PriceCacheRepository) GetPrice(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	key := fmt.Sprintf("price:%s:%s", base, quote)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw("cache get",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, ErrCacheMiss
	}
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromString(val)
}

// SetPrice caches a price with expiration.
func (r *PriceCacheRepository) SetPrice(ctx context.Context, base, quote string, price decimal.Decimal) error {
	key := fmt.Sprintf("price:%s:%s", base, quote)
	err := r.client.Set(ctx, key, price.String(), r.exp).Err()

	logger.Log.Debugw("cache set",
		"key", key,
		"price", price.String(),
		"error", err,
	)

	return err
}
