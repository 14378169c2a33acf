package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clainai/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts gcalendar.Options) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient, opts)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "", gcalendar.Options{})
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath, gcalendar.Options{})
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath, gcalendar.Options{})
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "none.json"), "", gcalendar.Options{})
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateReminder(t *testing.T) {
	var got struct {
		Summary   string `json:"summary"`
		Start     struct{ DateTime, TimeZone string }
		End       struct{ DateTime string }
		Reminders struct {
			UseDefault bool `json:"useDefault"`
			Overrides  []struct {
				Method  string
				Minutes int64
			}
		}
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/family/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id": "event-123", "summary": "call mom", "htmlLink": "https://calendar.google.com/event-uri"}`))
	}, gcalendar.Options{CalendarID: "family", Timezone: "Asia/Riyadh"})

	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateReminder(context.Background(), gcalendar.ReminderRequest{
		Summary:     "call mom",
		At:          at,
		PopupBefore: 10 * time.Minute,
	})
	if err != nil {
		t.Fatalf("CreateReminder() error = %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event %+v", event)
	}
	if !event.EndTime.Equal(at.Add(gcalendar.DefaultDuration)) {
		t.Errorf("EndTime = %v", event.EndTime)
	}
	if got.Start.TimeZone != "Asia/Riyadh" || got.Start.DateTime != "2026-05-01T09:00:00Z" {
		t.Errorf("unexpected start %+v", got.Start)
	}
	if len(got.Reminders.Overrides) != 1 || got.Reminders.Overrides[0].Minutes != 10 {
		t.Errorf("unexpected reminders %+v", got.Reminders)
	}
}

func TestCreateReminder_Errors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, gcalendar.Options{})

	if _, err := client.CreateReminder(context.Background(), gcalendar.ReminderRequest{Summary: "x"}); err == nil {
		t.Error("expected error for missing time")
	}
	if _, err := client.CreateReminder(context.Background(), gcalendar.ReminderRequest{Summary: "x", At: time.Now()}); err == nil {
		t.Error("expected api error")
	}
}
