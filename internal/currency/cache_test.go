package currency

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamba_backend/internal/config"
)

type stubDoer struct {
	calls int
	rate  float64
	err   error
}

func (d *stubDoer) Do(*http.Request) (*http.Response, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	body := `{"result":"success","rates":{"COP":` + strconv.FormatFloat(d.rate, 'f', -1, 64) + `}}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func testConfig() config.ExchangeConfig {
	return config.ExchangeConfig{
		APIURL:       "http://rates.test/latest/USD",
		TTLMinutes:   60,
		FallbackRate: 4200,
	}
}

func TestCacheServesAndCaches(t *testing.T) {
	doer := &stubDoer{rate: 4100}
	clock := &fakeClock{now: time.Now()}
	cache := NewCacheWithDeps(testConfig(), doer, clock.Now)

	rate := cache.Rate(context.Background())
	assert.Equal(t, 4100.0, rate.USDToCOP)
	assert.Equal(t, "api", rate.Source)

	// Within the TTL the upstream is not consulted again.
	cache.Rate(context.Background())
	cache.Rate(context.Background())
	assert.Equal(t, 1, doer.calls)
}

func TestCacheRefreshesAfterTTL(t *testing.T) {
	doer := &stubDoer{rate: 4100}
	clock := &fakeClock{now: time.Now()}
	cache := NewCacheWithDeps(testConfig(), doer, clock.Now)

	cache.Rate(context.Background())
	clock.advance(61 * time.Minute)

	doer.rate = 4300
	rate := cache.Rate(context.Background())
	assert.Equal(t, 4300.0, rate.USDToCOP)
	assert.Equal(t, 2, doer.calls)
}

func TestCacheFallsBackWhenUpstreamFails(t *testing.T) {
	doer := &stubDoer{err: errors.New("connection refused")}
	clock := &fakeClock{now: time.Now()}
	cache := NewCacheWithDeps(testConfig(), doer, clock.Now)

	rate := cache.Rate(context.Background())
	assert.Equal(t, 4200.0, rate.USDToCOP)
	assert.Equal(t, "fallback", rate.Source)
}

func TestCacheServesStaleOnFailure(t *testing.T) {
	doer := &stubDoer{rate: 4100}
	clock := &fakeClock{now: time.Now()}
	cache := NewCacheWithDeps(testConfig(), doer, clock.Now)

	first := cache.Rate(context.Background())
	require.Equal(t, 4100.0, first.USDToCOP)

	clock.advance(61 * time.Minute)
	doer.err = errors.New("upstream down")

	rate := cache.Rate(context.Background())
	assert.Equal(t, 4100.0, rate.USDToCOP)
	assert.Equal(t, "api", rate.Source)
}
