package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aladdinnow/forms-service/internal/platform/httpclient"
)

// maxResponseBytes bounds how much of a success body is decoded.
const maxResponseBytes = 1 << 20

// Requester sends JSON requests through an httpclient.Client and turns every
// outcome into either a decoded body or a domain error. Request bodies carry
// passwords and are never logged.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// RequestOption customizes a single outbound request.
type RequestOption func(*http.Request)

// WithHeader sets a header on the outbound request.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// WithIdempotencyKey lets the client retry a POST. The downstream is
// expected to deduplicate on the key.
func WithIdempotencyKey(key string) RequestOption {
	return WithHeader(httpclient.IdempotencyKeyHeader, key)
}

// NewRequester returns a Requester over client. A nil logger discards.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends method path with in encoded as JSON (omitted when nil) and
// decodes a 2xx body into out (skipped when nil). Non-2xx answers go through
// [TranslateHTTPError]; failures with no answer go through
// [TranslateTransportError].
func (r *Requester) Do(ctx context.Context, method, path string, in, out any, opts ...RequestOption) error {
	req, err := r.build(ctx, method, path, in)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(req)
	}

	attrs := []slog.Attr{
		slog.String("service", r.client.Name()),
		slog.String("method", method),
		slog.String("path", path),
	}

	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		if !errors.Is(err, context.Canceled) {
			r.logger.LogAttrs(ctx, slog.LevelError, "downstream unreachable", append(attrs, slog.Any("error", err))...)
		}
		return fmt.Errorf("%s %s: %w", method, path, TranslateTransportError(err))
	}
	defer r.drain(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		attrs = append(attrs, slog.Int("status", resp.StatusCode))
		if se := (*httpclient.StatusError)(nil); errors.As(err, &se) {
			attrs = append(attrs, slog.Int("attempts", se.Attempts))
		}
		r.logger.LogAttrs(ctx, slog.LevelWarn, "downstream rejected request", attrs...)
		return TranslateHTTPError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (r *Requester) build(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// drain discards what is left of the body so the connection can be reused.
func (r *Requester) drain(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing downstream response", slog.Any("error", err))
	}
}
