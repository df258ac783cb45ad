package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultMaxAttempts   = 4
	defaultBaseDelay     = 2 * time.Second
	defaultMaxRetryAfter = 300 * time.Second

	// drained bytes of discarded response, so connection can be reused.
	maxDrainBytes = 4 << 10
)

// Sleeper waits for provided duration or until context is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// CallOption is custom configuration of single Do call.
type CallOption func(c *callConfig)

type callConfig struct {
	noRetry bool
}

// Do sends request and retries it on 429, 502, 503 and 504 responses and on network errors.
// Waiting time comes from Retry-After header of the first retryable response,
// otherwise it grows exponentially from base delay.
// Any other response is returned immediately. Response of the last attempt is returned even if retryable.
// The caller is responsible for closing returned response body.
func (f *Fetcher) Do(ctx context.Context, req *http.Request, ops ...CallOption) (*http.Response, error) {
	var cfg callConfig
	for _, op := range ops {
		op(&cfg)
	}

	attempts := f.maxAttempts
	if cfg.noRetry {
		attempts = 1
	}

	for attempt := 0; ; attempt++ {
		attemptReq, err := f.prepareRequest(ctx, req, attempt)
		if err != nil {
			return nil, err
		}

		isLast := attempt+1 >= attempts
		wait := f.baseDelay << attempt

		resp, err := f.client.Do(attemptReq)
		switch {
		case err != nil:
			if isLast || ctx.Err() != nil {
				return nil, fmt.Errorf("can't get http response: %w", err)
			}
		case !isRetryable(resp.StatusCode) || isLast:
			return resp, nil
		default:
			if retryAfter, ok := f.retryAfter(resp.Header); ok && attempt == 0 {
				wait = retryAfter
			}
			discard(resp.Body)
		}

		if err := f.sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("can't wait for retry: %w", err)
		}
	}
}

func (f *Fetcher) prepareRequest(ctx context.Context, req *http.Request, attempt int) (*http.Request, error) {
	attemptReq := req.Clone(ctx)
	if f.userAgent != "" && attemptReq.Header.Get("User-Agent") == "" {
		attemptReq.Header.Set("User-Agent", f.userAgent)
	}

	if attempt == 0 || req.Body == nil || req.Body == http.NoBody {
		return attemptReq, nil
	}

	if req.GetBody == nil {
		return nil, ErrBodyNotReplayable
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("can't replay request body: %w", err)
	}
	attemptReq.Body = body

	return attemptReq, nil
}

// retryAfter returns delay from Retry-After header given in seconds, capped at max delay.
func (f *Fetcher) retryAfter(header http.Header) (time.Duration, bool) {
	value := strings.TrimSpace(header.Get("Retry-After"))
	if value == "" {
		return 0, false
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, false
	}

	return min(time.Duration(seconds)*time.Second, f.maxRetryAfter), true
}

func isRetryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func discard(body io.ReadCloser) {
	_, _ = io.CopyN(io.Discard, body, maxDrainBytes)
	_ = body.Close()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithoutRetry sends request only once.
func WithoutRetry() CallOption {
	return func(c *callConfig) {
		c.noRetry = true
	}
}

// WithMaxAttempts sets maximal number of attempts of single request.
func WithMaxAttempts(attempts int) Option {
	return func(f *Fetcher) {
		f.maxAttempts = max(attempts, 1)
	}
}

// WithBaseDelay sets delay before the first retry. Following delays are doubled.
func WithBaseDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.baseDelay = d
	}
}

// WithSleeper sets custom function waiting between attempts.
func WithSleeper(s Sleeper) Option {
	return func(f *Fetcher) {
		f.sleep = s
	}
}
