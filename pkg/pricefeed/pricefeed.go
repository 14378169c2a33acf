// Package pricefeed reads a current value for a topic from an HTML page.
package pricefeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultTimeout = 10 * time.Second
	maxBody        = 2 << 20
)

// Client implements IPriceFeed
type Client struct {
	urlTemplate string
	selector    string
	client      *http.Client
	now         func() time.Time
}

// New creates a client; an empty URL template or selector yields ErrNotConfigured.
func New(cfg Config) (*Client, error) {
	if cfg.URLTemplate == "" || cfg.Selector == "" {
		return nil, ErrNotConfigured
	}
	if strings.Count(cfg.URLTemplate, "%s") != 1 {
		return nil, fmt.Errorf("pricefeed: url template must contain exactly one %%s")
	}
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		urlTemplate: cfg.URLTemplate,
		selector:    cfg.Selector,
		client:      cfg.HTTPClient,
		now:         time.Now,
	}, nil
}

// Lookup fetches the page for topic and returns the first non-empty match of the selector.
func (c *Client) Lookup(ctx context.Context, topic string) (Quote, error) {
	source := fmt.Sprintf(c.urlTemplate, url.QueryEscape(topic))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("price page returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Quote{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var value string
	doc.Find(c.selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		value = strings.Join(strings.Fields(s.Text()), " ")
		return value == ""
	})
	if value == "" {
		return Quote{}, ErrNoQuote
	}

	return Quote{
		Topic:     topic,
		Value:     value,
		Source:    source,
		FetchedAt: c.now().UTC(),
	}, nil
}
