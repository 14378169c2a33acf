package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestTunnelWatcher_PrefersHTTPS(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tunnels" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"tunnels":[
			{"public_url":"http://abc.ngrok.io","proto":"http"},
			{"public_url":"https://abc.ngrok.io","proto":"https"}
		]}`))
	}))
	defer ts.Close()

	got, err := newTunnelWatcher(ts.URL + "/").PublicURL(context.Background())
	if err != nil {
		t.Fatalf("PublicURL: %v", err)
	}
	if got != "https://abc.ngrok.io" {
		t.Errorf("PublicURL() = %q", got)
	}
}

func TestTunnelWatcher_WaitsForTunnel(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Write([]byte(`{"tunnels":[]}`))
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"http://late.ngrok.io","proto":"http"}]}`))
	}))
	defer ts.Close()

	p := newTunnelWatcher(ts.URL)
	p.interval = time.Millisecond

	got, err := p.PublicURL(context.Background())
	if err != nil {
		t.Fatalf("PublicURL: %v", err)
	}
	if got != "http://late.ngrok.io" || calls.Load() != 3 {
		t.Errorf("PublicURL() = %q after %d calls", got, calls.Load())
	}
}

func TestTunnelWatcher_GivesUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer ts.Close()

	p := newTunnelWatcher(ts.URL)
	p.attempts = 2
	p.interval = time.Millisecond

	if _, err := p.PublicURL(context.Background()); !errors.Is(err, errNoTunnel) {
		t.Errorf("PublicURL() error = %v, want errNoTunnel", err)
	}
}
