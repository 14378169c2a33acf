package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var errNoTunnel = errors.New("ngrok has no active tunnel")

type tunnelList struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// tunnelWatcher polls the local ngrok API until a public URL shows up.
type tunnelWatcher struct {
	apiURL   string
	client   *http.Client
	attempts int
	interval time.Duration
}

func newTunnelWatcher(apiURL string) *tunnelWatcher {
	return &tunnelWatcher{
		apiURL:   strings.TrimRight(apiURL, "/"),
		client:   &http.Client{Timeout: 5 * time.Second},
		attempts: 10,
		interval: 3 * time.Second,
	}
}

// PublicURL returns the https tunnel if there is one, else any tunnel.
func (p *tunnelWatcher) PublicURL(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		url, err := p.fetch(ctx)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == p.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.interval):
		}
	}
	return "", fmt.Errorf("ngrok tunnel lookup failed after %d attempts: %w", p.attempts, lastErr)
}

func (p *tunnelWatcher) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL+"/api/tunnels", nil)
	if err != nil {
		return "", err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ngrok API returned %d", resp.StatusCode)
	}

	var list tunnelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("decode ngrok tunnels: %w", err)
	}
	for _, t := range list.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(list.Tunnels) > 0 {
		return list.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnel
}
