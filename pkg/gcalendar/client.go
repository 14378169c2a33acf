package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultDuration is the length of a reminder event.
const DefaultDuration = 15 * time.Minute

// Client puts reminder events on one Google Calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
}

// NewClientFromCredentialsFile reads a Service Account or OAuth desktop
// credentials file. tokenPath is only used for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string, opts Options) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath, opts)
}

// NewClientFromCredentialsJSON creates a client from raw credentials JSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, opts Options) (*Client, error) {
	// Service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return newClient(svc, opts), nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("OAuth desktop credentials need a token at %s: %w", tokenPath, tokenErr)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return newClient(svc, opts), nil
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, opts), nil
}

func newClient(svc *calendar.Service, opts Options) *Client {
	if opts.CalendarID == "" {
		opts.CalendarID = "primary"
	}
	return &Client{service: svc, calendarID: opts.CalendarID, timezone: opts.Timezone}
}

// CreateReminder inserts an event with a popup reminder.
func (c *Client) CreateReminder(ctx context.Context, req ReminderRequest) (*Event, error) {
	if req.At.IsZero() {
		return nil, fmt.Errorf("reminder time is required")
	}
	duration := req.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	end := req.At.Add(duration)

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{DateTime: req.At.Format(time.RFC3339), TimeZone: c.timezone},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: c.timezone},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: int64(req.PopupBefore / time.Minute)},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.At,
		EndTime:   end,
	}, nil
}
