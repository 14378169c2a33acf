package gcalendar

import "time"

// Options are defaults applied to every reminder.
type Options struct {
	CalendarID string // "primary" when empty
	Timezone   string // IANA name, e.g. "Asia/Riyadh"
}

// ReminderRequest is one reminder to put on the calendar.
type ReminderRequest struct {
	Summary     string
	Description string
	At          time.Time
	Duration    time.Duration // DefaultDuration when zero
	PopupBefore time.Duration // popup offset before At
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
