package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecoach/internal/catalog"
)

func TestLimiter_RefillsOverTime(t *testing.T) {
	now := testNow
	l := newLimiter(2, 2)
	allow := func() bool { return l.AllowN(now, 1) }

	assert.True(t, allow())
	assert.True(t, allow())
	assert.False(t, allow(), "burst exhausted")

	now = now.Add(500 * time.Millisecond)
	assert.True(t, allow(), "one token after half a second at 2/s")
	assert.False(t, allow())

	now = now.Add(time.Hour)
	assert.True(t, allow())
	assert.True(t, allow())
	assert.False(t, allow(), "refill is capped at burst")
}

func TestLimiter_ZeroBurstStillAdmitsOne(t *testing.T) {
	l := newLimiter(1, 0)
	assert.Equal(t, 1, l.Burst())
	assert.True(t, l.AllowN(testNow, 1))
	assert.False(t, l.AllowN(testNow, 1))
}

func TestRateLimitedGenerationEndpoints(t *testing.T) {
	now := testNow
	s, err := New(Config{
		Mode:      gin.TestMode,
		Catalog:   catalog.Default(),
		Logger:    zerolog.Nop(),
		Clock:     func() time.Time { return now },
		RateLimit: 1,
		Burst:     1,
	})
	require.NoError(t, err)

	rec := do(t, s, http.MethodPost, "/api/scenarios/random", map[string]uint64{"seed": 1})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/scenarios/random", map[string]uint64{"seed": 2})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	rec = do(t, s, http.MethodGet, "/api/catalog/traders", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "catalog reads are not limited")

	now = now.Add(time.Second)
	rec = do(t, s, http.MethodPost, "/api/scenarios/random", map[string]uint64{"seed": 3})
	assert.Equal(t, http.StatusOK, rec.Code)
}
