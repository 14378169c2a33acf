package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Authorizer runs the one-time OAuth consent for desktop credentials and
// stores the resulting token where NewClientFromCredentialsFile looks for it.
type Authorizer struct {
	config *oauth2.Config
}

// NewAuthorizer parses OAuth desktop ("installed") credentials.
func NewAuthorizer(credentialsJSON []byte) (*Authorizer, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth credentials: %w", err)
	}
	return &Authorizer{config: cfg}, nil
}

// AuthCodeURL is the consent page the user opens in a browser.
func (a *Authorizer) AuthCodeURL(state string) string {
	return a.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeAndSave trades the authorization code for a token and writes it
// to tokenPath with owner-only permissions.
func (a *Authorizer) ExchangeAndSave(ctx context.Context, code, tokenPath string) error {
	tok, err := a.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}
	return nil
}
