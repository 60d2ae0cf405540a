// Package currency serves the USD to COP exchange rate from a
// process-wide TTL cache over a public rates API.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"chamba_backend/internal/config"
	"chamba_backend/internal/logger"
)

// Rate is an exchange-rate snapshot. Source is "api" when it came from
// the upstream and "fallback" when the configured default was used.
type Rate struct {
	USDToCOP  float64   `json:"usd_to_cop"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

// HTTPDoer is the subset of http.Client the cache needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Cache holds a single rate with a TTL. Concurrent refreshes collapse
// into one upstream call via singleflight; a stale value keeps being
// served when the upstream fails.
type Cache struct {
	cfg    config.ExchangeConfig
	client HTTPDoer
	now    func() time.Time
	ttl    time.Duration

	group singleflight.Group

	mu     sync.RWMutex
	cached *Rate
}

func NewCache(cfg config.ExchangeConfig) *Cache {
	return NewCacheWithDeps(cfg, &http.Client{Timeout: 10 * time.Second}, time.Now)
}

// NewCacheWithDeps injects the HTTP client and clock, for tests.
func NewCacheWithDeps(cfg config.ExchangeConfig, client HTTPDoer, now func() time.Time) *Cache {
	return &Cache{
		cfg:    cfg,
		client: client,
		now:    now,
		ttl:    time.Duration(cfg.TTLMinutes) * time.Minute,
	}
}

// Rate returns the cached rate, refreshing it when expired. It never
// returns an error: upstream failure falls back to the last good value
// or the configured default.
func (c *Cache) Rate(ctx context.Context) Rate {
	if rate, ok := c.fresh(); ok {
		return rate
	}

	v, _, _ := c.group.Do("usd-cop", func() (interface{}, error) {
		// Re-check under the flight: another caller may have
		// refreshed while this one waited.
		if rate, ok := c.fresh(); ok {
			return rate, nil
		}

		rate, err := c.fetch(ctx)
		if err != nil {
			logger.CtxWarn(ctx, "exchange rate fetch failed, serving fallback", "error", err)
			c.mu.RLock()
			stale := c.cached
			c.mu.RUnlock()
			if stale != nil {
				return *stale, nil
			}
			return Rate{
				USDToCOP:  c.cfg.FallbackRate,
				Source:    "fallback",
				FetchedAt: c.now(),
			}, nil
		}

		c.mu.Lock()
		c.cached = &rate
		c.mu.Unlock()
		return rate, nil
	})
	return v.(Rate)
}

func (c *Cache) fresh() (Rate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cached == nil {
		return Rate{}, false
	}
	if c.now().Sub(c.cached.FetchedAt) >= c.ttl {
		return Rate{}, false
	}
	return *c.cached, true
}

type ratesAPIResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

func (c *Cache) fetch(ctx context.Context) (Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIURL, nil)
	if err != nil {
		return Rate{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Rate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rate{}, fmt.Errorf("rates API returned status %d", resp.StatusCode)
	}

	var body ratesAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Rate{}, fmt.Errorf("decode rates response: %w", err)
	}

	cop, ok := body.Rates["COP"]
	if !ok || cop <= 0 {
		return Rate{}, fmt.Errorf("rates response missing COP")
	}

	return Rate{USDToCOP: cop, Source: "api", FetchedAt: c.now()}, nil
}
