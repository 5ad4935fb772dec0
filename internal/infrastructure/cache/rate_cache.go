package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	financeapp "github.com/muebleria/backend/internal/application/finance"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
)

const rateKeyPrefix = "exchange_rate:"

// RedisRateCache caches exchange rates in redis with a TTL. A missing
// key maps to shared.ErrNotFound so callers fall through to the store.
type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRateCache creates a new RedisRateCache
func NewRedisRateCache(client *redis.Client, ttl time.Duration) *RedisRateCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisRateCache{client: client, ttl: ttl}
}

func rateKey(currency valueobject.Currency) string {
	return rateKeyPrefix + string(currency)
}

// Get returns the cached rate for a currency
func (c *RedisRateCache) Get(ctx context.Context, currency valueobject.Currency) (decimal.Decimal, error) {
	value, err := c.client.Get(ctx, rateKey(currency)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, shared.ErrNotFound
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(value)
	if err != nil {
		// A corrupt entry behaves like a miss after being dropped.
		_ = c.client.Del(ctx, rateKey(currency)).Err()
		return decimal.Zero, shared.ErrNotFound
	}
	return rate, nil
}

// Set stores the rate for a currency
func (c *RedisRateCache) Set(ctx context.Context, currency valueobject.Currency, rate decimal.Decimal) error {
	return c.client.Set(ctx, rateKey(currency), rate.String(), c.ttl).Err()
}

// Invalidate drops the cached rate for a currency
func (c *RedisRateCache) Invalidate(ctx context.Context, currency valueobject.Currency) error {
	return c.client.Del(ctx, rateKey(currency)).Err()
}

// Ensure RedisRateCache implements the application cache contract
var _ financeapp.RateCache = (*RedisRateCache)(nil)
