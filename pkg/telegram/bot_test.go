package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"clainai/pkg/telegram"
)

func TestBot(t *testing.T) {
	var (
		mu      sync.Mutex
		sent    []string
		secrets []string
		actions []string
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			mu.Lock()
			secrets = append(secrets, req["secret_token"])
			mu.Unlock()
			if req["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req["url"] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			text := req["text"].(string)

			if text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			mu.Lock()
			sent = append(sent, text)
			mu.Unlock()
			w.Write([]byte(`{"ok": true}`))
			return
		}

		if strings.HasSuffix(path, "/sendChatAction") {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			mu.Lock()
			actions = append(actions, req["action"].(string))
			mu.Unlock()
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if secrets[len(secrets)-1] != "s3cret" {
			t.Errorf("secret_token = %q, want s3cret", secrets[len(secrets)-1])
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "cause_500", ""); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "مرحبا"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage Splits Long Text", func(t *testing.T) {
		before := len(sent)
		long := strings.Repeat("ا", telegram.MaxMessageLength+10)
		if err := bot.SendMessage(ctx, 12345, long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(sent) - before; got != 2 {
			t.Errorf("sent %d messages, want 2", got)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendTyping", func(t *testing.T) {
		if err := bot.SendTyping(ctx, 12345); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actions[len(actions)-1] != "typing" {
			t.Errorf("action = %q, want typing", actions[len(actions)-1])
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		if err := badBot.SendMessage(ctx, 12345, "fail"); err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}

func TestSplitText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"short", "abc", 10, []string{"abc"}},
		{"hard cut", "abcdef", 4, []string{"abcd", "ef"}},
		{"newline cut", "abc\ndefgh", 6, []string{"abc\n", "defgh"}},
		{"runes not bytes", "ابجد", 2, []string{"اب", "جد"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := telegram.SplitText(tt.text, tt.limit)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("SplitText(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}
