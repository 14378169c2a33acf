package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCalendarAuthCmd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer","refresh_token":"rt"}`))
	}))
	defer ts.Close()

	dir := t.TempDir()
	credsPath := filepath.Join(dir, "creds.json")
	tokenPath := filepath.Join(dir, "token.json")
	creds := fmt.Sprintf(`{"installed":{"client_id":"cid","client_secret":"s","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.example/auth","token_uri":%q}}`, ts.URL)
	if err := os.WriteFile(credsPath, []byte(creds), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"calendar-auth", "--credentials", credsPath, "--token", tokenPath})
	cmd.SetIn(strings.NewReader("auth-code\n"))
	cmd.SetOut(&out)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("calendar-auth: %v", err)
	}
	if !strings.Contains(out.String(), "https://accounts.example/auth") {
		t.Errorf("output missing auth URL:\n%s", out.String())
	}
	if _, err := os.Stat(tokenPath); err != nil {
		t.Errorf("token not written: %v", err)
	}
}

func TestCalendarAuthCmd_MissingCredentials(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"calendar-auth", "--credentials", filepath.Join(t.TempDir(), "nope.json")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Errorf("expected error for a missing credentials file")
	}
}
