package httpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aladdinnow/forms-service/internal/platform/config"
)

func TestRetryPolicy_DelaysGrowWithinJitterAndCap(t *testing.T) {
	t.Parallel()

	p := newRetryPolicy(config.RetryConfig{
		MaxAttempts:     5,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     400 * time.Millisecond,
		Multiplier:      2,
	})
	schedule := p.delays()

	for _, base := range []time.Duration{100, 200, 400, 400, 400} {
		base *= time.Millisecond
		d := schedule.NextBackOff()
		lo := time.Duration(float64(base) * (1 - jitter))
		hi := time.Duration(float64(base)*(1+jitter)) + 1
		assert.GreaterOrEqual(t, d, lo)
		assert.LessOrEqual(t, d, hi)
	}
}

func TestRetryPolicy_AtLeastOneAttempt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, newRetryPolicy(config.RetryConfig{MaxAttempts: 0}).maxAttempts)
	assert.Equal(t, 4, newRetryPolicy(config.RetryConfig{MaxAttempts: 4}).maxAttempts)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.False(t, isRetryable(nil))
	assert.False(t, isRetryable(context.Canceled))
	assert.False(t, isRetryable(context.DeadlineExceeded))
	assert.True(t, isRetryable(&net.OpError{Op: "dial", Err: errors.New("connection refused")}))
	assert.True(t, isRetryable(errors.New("unexpected EOF")))
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	} {
		assert.Equal(t, want, isRetryableStatus(status), "status %d", status)
	}
}

func TestIsReplayable(t *testing.T) {
	t.Parallel()

	for method, want := range map[string]bool{
		http.MethodGet:    true,
		http.MethodHead:   true,
		http.MethodPut:    true,
		http.MethodDelete: true,
		http.MethodPost:   false,
		http.MethodPatch:  false,
	} {
		req := httptest.NewRequest(method, "/users/register", http.NoBody)
		assert.Equal(t, want, isReplayable(req), method)
	}

	keyed := httptest.NewRequest(http.MethodPost, "/users/register", http.NoBody)
	keyed.Header.Set(IdempotencyKeyHeader, "k-1")
	assert.True(t, isReplayable(keyed))
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	computed := 150 * time.Millisecond
	ceiling := 2 * time.Second

	assert.Equal(t, computed, retryAfter("", computed, ceiling))
	assert.Equal(t, computed, retryAfter("Wed, 21 Oct 2026 07:28:00 GMT", computed, ceiling))
	assert.Equal(t, computed, retryAfter("-1", computed, ceiling))
	assert.Equal(t, time.Duration(0), retryAfter("0", computed, ceiling))
	assert.Equal(t, time.Second, retryAfter("1", computed, ceiling))
	assert.Equal(t, ceiling, retryAfter("120", computed, ceiling))
	assert.Equal(t, 120*time.Second, retryAfter("120", computed, 0))
}

func TestSleep_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleep(context.Background(), 0))
}
