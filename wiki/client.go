// Package wiki provides a rate-limited client for the MediaWiki Action API.
//
// All operations follow the API's continuation tokens to completion, so a
// single call returns the full result set regardless of how many pages the
// API splits it across. Batch operations fan out over a bounded number of
// concurrent requests.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit and DefaultRateBurst bound request throughput.
	// Wikipedia asks clients to stay well under 200 req/s.
	DefaultRateLimit = 50.0
	DefaultRateBurst = 10

	// DefaultMaxConcurrency bounds parallel requests in batch operations.
	DefaultMaxConcurrency = 4

	// titleBatchSize is the MediaWiki limit on titles per request.
	titleBatchSize = 50

	maxRetries     = 3
	baseRetryDelay = time.Second
)

const defaultUserAgent = "wikicorpus/1.0 (https://github.com/matsen/wikicorpus)"

// Client is a rate-limited HTTP client for the MediaWiki Action API.
type Client struct {
	httpClient     *http.Client
	limiter        *rate.Limiter
	logger         *log.Logger
	baseURL        string
	lang           string
	userAgent      string
	pageSize       string
	maxConcurrency int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a fixed API endpoint, overriding the per-language
// wikipedia.org URL (for testing or mirrors).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLanguage sets the Wikipedia language edition (default "en").
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.lang = lang
	}
}

// WithRateLimiter sets a custom rate limiter, replacing the default
// token bucket.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for retrieval progress and retry
// warnings. The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMaxConcurrency bounds the number of parallel requests in batch
// operations (default 4).
func WithMaxConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

// WithPageSize sets the per-request result limit instead of the API
// maximum. Mainly useful for exercising continuation handling in tests.
func WithPageSize(n int) Option {
	return func(c *Client) {
		c.pageSize = strconv.Itoa(n)
	}
}

// NewClient creates a MediaWiki API client for the English Wikipedia.
// Use options to change the language, throughput, or endpoint.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		limiter:        rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateBurst),
		logger:         log.New(io.Discard),
		lang:           "en",
		userAgent:      defaultUserAgent,
		pageSize:       "max",
		maxConcurrency: DefaultMaxConcurrency,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Lang returns the configured language edition.
func (c *Client) Lang() string {
	return c.lang
}

func (c *Client) endpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", c.lang)
}

// queryParams returns the base parameter set shared by all operations.
// maxlag=5 asks the API to reject requests while replication lag is high;
// those rejections come back as a retryable maxlag error.
func queryParams() url.Values {
	return url.Values{
		"action": {"query"},
		"format": {"json"},
		"maxlag": {"5"},
	}
}

// apiGet performs a GET against the API with rate limiting and bounded
// retry on 429 responses and transient network failures.
func (c *Client) apiGet(ctx context.Context, params url.Values) (*apiResponse, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		resp, retryAfter, err := c.doOnce(ctx, params)
		if err == nil {
			return resp, nil
		}
		if attempt >= maxRetries || !retryable(err) {
			return nil, err
		}

		delay := retryAfter
		if delay < 0 {
			delay = baseRetryDelay << attempt
		}
		c.logger.Warn("retrying request",
			"attempt", attempt+1, "max", maxRetries, "delay", delay, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// noRetryHint marks the absence of a Retry-After header; a zero hint is a
// valid "retry now".
const noRetryHint = time.Duration(-1)

// doOnce performs a single request. The returned duration is the server's
// Retry-After hint for 429 responses, noRetryHint when the server gave none.
func (c *Client) doOnce(ctx context.Context, params url.Values) (*apiResponse, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint()+"?"+params.Encode(), nil)
	if err != nil {
		return nil, noRetryHint, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, noRetryHint, ctx.Err()
		}
		return nil, noRetryHint, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, parseRetryAfter(resp.Header), fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, noRetryHint, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, noRetryHint, fmt.Errorf("%w: decoding body: %v", ErrInvalidResponse, err)
	}
	if body.Error != nil {
		apiErr := &APIError{Code: body.Error.Code, Info: body.Error.Info}
		// maxlag rejections come back as HTTP 200 with a Retry-After header.
		if body.Error.Code == "maxlag" {
			return nil, parseRetryAfter(resp.Header), apiErr
		}
		return nil, noRetryHint, apiErr
	}

	return &body, noRetryHint, nil
}

func parseRetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return noRetryHint
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return noRetryHint
	}
	return time.Duration(secs) * time.Second
}

func retryable(err error) bool {
	if IsRateLimited(err) || errors.Is(err, ErrNetwork) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == "maxlag"
}
