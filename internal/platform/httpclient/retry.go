package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/aladdinnow/forms-service/internal/platform/config"
	"github.com/aladdinnow/forms-service/internal/platform/logging"
)

// IdempotencyKeyHeader marks a non-idempotent request as safe to replay.
const IdempotencyKeyHeader = "Idempotency-Key"

// jitter is the randomization factor applied to each delay (±25%).
const jitter = 0.25

type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: max(cfg.MaxAttempts, 1),
		initial:     cfg.InitialInterval,
		ceiling:     cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// delays returns a fresh exponential schedule; BackOff values are stateful.
func (p retryPolicy) delays() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initial
	b.MaxInterval = p.ceiling
	b.Multiplier = p.multiplier
	b.RandomizationFactor = jitter
	b.Reset()
	return b
}

// sendWithRetry sends req until it gets a non-retryable outcome or runs out
// of attempts, and reports how many attempts it made. The body is buffered
// so every attempt sends the same bytes.
func (c *Client) sendWithRetry(ctx context.Context, req *http.Request) (*http.Response, int, error) {
	body, err := bufferBody(req)
	if err != nil {
		return nil, 0, err
	}

	attempts := c.retry.maxAttempts
	if !isReplayable(req) {
		attempts = 1
	}
	schedule := c.retry.delays()

	for attempt := 1; ; attempt++ {
		rewind(req, body)
		resp, err := c.http.Do(req)
		last := attempt == attempts

		var cause error
		delay := schedule.NextBackOff()
		switch {
		case err != nil:
			if last || !isRetryable(err) {
				return nil, attempt, err
			}
			cause = err
		case !isRetryableStatus(resp.StatusCode):
			return resp, attempt, nil
		case last:
			return resp, attempt, &StatusError{Service: c.name, StatusCode: resp.StatusCode, Attempts: attempt}
		default:
			cause = fmt.Errorf("HTTP %d", resp.StatusCode)
			delay = retryAfter(resp.Header.Get("Retry-After"), delay, c.retry.ceiling)
			discard(resp)
		}

		logging.FromContext(ctx).WarnContext(ctx, "retrying outbound request",
			slog.String("peer_service", c.name),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", attempts),
			slog.Duration("backoff", delay),
			slog.Any("error", cause),
		)
		if err := sleep(ctx, delay); err != nil {
			return nil, attempt, err
		}
	}
}

// isReplayable reports whether sending req twice is safe.
func isReplayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return req.Header.Get(IdempotencyKeyHeader) != ""
	}
}

// isRetryable treats every transport error as transient except the
// caller's own cancellation or deadline.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus is true for 429 and every 5xx.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// retryAfter honors a Retry-After header given in seconds, capped at
// ceiling. Absent or unparsable values keep the computed delay.
func retryAfter(header string, computed, ceiling time.Duration) time.Duration {
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return computed
	}
	d := time.Duration(secs) * time.Second
	if ceiling > 0 && d > ceiling {
		return ceiling
	}
	return d
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
