package repository

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const IndexedUnitKey = "rates:indexed_unit"

// RedisRateRepository reads an operator-set override of the indexed unit
// value from Redis. A missing key, an unreadable value or an unreachable
// server all fall back to the configured constant.
type RedisRateRepository struct {
	client   *redis.Client
	key      string
	fallback float64
	log      zerolog.Logger
}

func NewRedisRateRepository(addr string, fallback float64, log zerolog.Logger) *RedisRateRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  500 * time.Millisecond,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		MaxRetries:   -1,
	})
	return &RedisRateRepository{
		client:   rdb,
		key:      IndexedUnitKey,
		fallback: fallback,
		log:      log.With().Str("repository", "redis_rate").Logger(),
	}
}

func (r *RedisRateRepository) IndexedUnitValue(ctx context.Context) (float64, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return r.fallback, nil
	}
	if err != nil {
		r.log.Warn().Err(err).Msg("Redis unavailable, using configured indexed unit value")
		return r.fallback, nil
	}

	value, ok := parseIndexedUnitValue(val)
	if !ok {
		r.log.Warn().Str("value", val).Msg("Invalid indexed unit value in Redis, using configured value")
		return r.fallback, nil
	}
	return value, nil
}

// parseIndexedUnitValue accepts only positive finite numbers. ParseFloat
// alone lets "NaN" and "Inf" through.
func parseIndexedUnitValue(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, false
	}
	return value, true
}

func (r *RedisRateRepository) Close() error {
	return r.client.Close()
}
