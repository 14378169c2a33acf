package pricefeed

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrNotConfigured = errors.New("price feed not configured")
	ErrNoQuote       = errors.New("no quote found on page")
)

// Config points the feed at one HTML page per topic.
type Config struct {
	// URLTemplate contains one %s, replaced by the query-escaped topic.
	URLTemplate string
	// Selector is the CSS selector of the element holding the value.
	Selector   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Quote is the current value read for a topic.
type Quote struct {
	Topic     string
	Value     string
	Source    string
	FetchedAt time.Time
}
