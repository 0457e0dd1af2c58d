package gcalendar

import "time"

// EventRequest is the input for saving a Google Calendar event.
type EventRequest struct {
	CalendarID  string
	ID          string // base32hex, 5-1024 chars; empty lets Google assign one
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Moscow"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
