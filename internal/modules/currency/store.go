// README: Rate cache backed by Redis.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "currency:rates"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// GetRates returns the cached table for (base, symbols) and whether it was present.
func (s *Store) GetRates(ctx context.Context, base string, symbols []string) (Rates, bool, error) {
	val, err := s.redis.Get(ctx, cacheKey(base, symbols)).Result()
	if err == redis.Nil {
		return Rates{}, false, nil
	}
	if err != nil {
		return Rates{}, false, err
	}
	var r Rates
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return Rates{}, false, err
	}
	return r, true, nil
}

func (s *Store) SetRates(ctx context.Context, r Rates, symbols []string, ttl time.Duration) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, cacheKey(r.Base, symbols), b, ttl).Err()
}

// cacheKey is order-insensitive in the requested symbols.
func cacheKey(base string, symbols []string) string {
	sorted := append([]string(nil), symbols...)
	sort.Strings(sorted)
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, base, strings.Join(sorted, ","))
}
