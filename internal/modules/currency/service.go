// README: Exchange-rate service with cache-aside lookup; display only, never feeds the fee engine.
package currency

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Fetcher is the upstream rate source. *Client satisfies it.
type Fetcher interface {
	FetchRates(ctx context.Context, base string, symbols []string) (Rates, error)
}

// Cache is the rate cache. *Store satisfies it; a nil cache disables caching.
type Cache interface {
	GetRates(ctx context.Context, base string, symbols []string) (Rates, bool, error)
	SetRates(ctx context.Context, r Rates, symbols []string, ttl time.Duration) error
}

type Service struct {
	fetcher Fetcher
	cache   Cache
	ttl     time.Duration
}

func NewService(fetcher Fetcher, cache Cache, ttl time.Duration) *Service {
	return &Service{fetcher: fetcher, cache: cache, ttl: ttl}
}

// Latest returns the current rate table for base, serving from the cache
// when warm. Cache failures are logged and treated as misses; only an
// upstream failure with a cold cache surfaces as ErrUnavailable.
func (s *Service) Latest(ctx context.Context, base string, symbols []string) (Rates, error) {
	if s.cache != nil {
		r, ok, err := s.cache.GetRates(ctx, base, symbols)
		if err != nil {
			log.Printf("rate cache read: %v", err)
		} else if ok {
			return r, nil
		}
	}

	r, err := s.fetcher.FetchRates(ctx, base, symbols)
	if err != nil {
		return Rates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.SetRates(ctx, r, symbols, s.ttl); err != nil {
			log.Printf("rate cache write: %v", err)
		}
	}
	return r, nil
}
