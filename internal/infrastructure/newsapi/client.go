// Package newsapi fetches and decodes NewsAPI v2 responses.
package newsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/tesso57/headlines/internal/domain/news"
	"golang.org/x/time/rate"
)

const (
	acceptHeader    = "application/json"
	userAgentHeader = "Headlines/1.0"
)

// maxBodyBytes caps how much of a response is read.
var maxBodyBytes int64 = 10 << 20

// DefaultTimeout matches the request timeout of common platform HTTP stacks.
const DefaultTimeout = 60 * time.Second

type headerTransport struct {
	base http.RoundTripper
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", acceptHeader)
	}
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", userAgentHeader)
	}
	return base.RoundTrip(clone)
}

// ClientOptions configures a Client.
type ClientOptions struct {
	Endpoints         Endpoints
	Timeout           time.Duration
	RequestsPerSecond float64
	Transport         http.RoundTripper
}

// Client issues single-shot GET requests against NewsAPI. It never retries.
type Client struct {
	endpoints Endpoints
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient constructs a Client.
func NewClient(opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := new(Client{
		endpoints: opts.Endpoints,
		http: &http.Client{
			Timeout:   timeout,
			Transport: headerTransport{base: opts.Transport},
		},
	})
	if opts.RequestsPerSecond > 0 {
		burst := int(math.Ceil(opts.RequestsPerSecond))
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return c
}

// Endpoints returns the URL builder used by the client.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// FetchCategory fetches the top headlines payload for one category.
func (c *Client) FetchCategory(ctx context.Context, category news.Category) ([]byte, error) {
	return c.Fetch(ctx, c.endpoints.TopHeadlines(category))
}

// FetchEverything fetches one page of the everything search.
func (c *Client) FetchEverything(ctx context.Context, query string, page int) ([]byte, error) {
	return c.Fetch(ctx, c.endpoints.Everything(query, page))
}

// Fetch performs a GET on rawURL and returns the response body unchanged.
// Transport errors and non-2xx responses are reported as *FetchError.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	display := redact(rawURL)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{URL: display, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: display, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = display
		}
		return nil, &FetchError{URL: display, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &FetchError{URL: display, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &FetchError{URL: display, Err: err}
	}
	if int64(len(body)) > maxBodyBytes {
		return nil, &FetchError{URL: display, Err: fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, maxBodyBytes)}
	}
	return body, nil
}
