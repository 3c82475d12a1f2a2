// Package wiki fetches date pages from a MediaWiki site.
package wiki

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// Date pages run well under this.
const maxBodyBytes = 8 << 20

const maxRetries = 3

// Client fetches and parses encyclopedia date pages.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a client for the given site. rps bounds the request rate
// so that backfill runs over many dates stay polite.
func NewClient(baseURL, userAgent string, timeout time.Duration, rps float64) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// PageURL returns the article URL for a date page, e.g. .../wiki/September_5.
func (c *Client) PageURL(month string, day int) string {
	return fmt.Sprintf("%s/wiki/%s_%d", c.baseURL, url.PathEscape(month), day)
}

// PageDocument fetches the date page for the given month and day and parses
// it into a node tree. Transient failures (5xx, 429, network errors) are
// retried with jittered exponential backoff; anything else fails the run.
func (c *Client) PageDocument(ctx context.Context, month string, day int) (*html.Node, error) {
	u := c.PageURL(month, day)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff(attempt - 1)):
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		doc, retryable, err := c.fetchOnce(ctx, u)
		if err == nil {
			return doc, nil
		}
		lastErr = err
		if !retryable {
			return nil, fmt.Errorf("fetch %s: %w", u, err)
		}
	}
	return nil, fmt.Errorf("fetch %s: %w", u, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, u string) (doc *html.Node, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("status %d", resp.StatusCode)
	}

	doc, err = html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, false, fmt.Errorf("parse html: %w", err)
	}
	return doc, false, nil
}

// backoff returns the wait before retry attempt n (0-indexed), with jitter.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}
