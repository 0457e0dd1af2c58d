package calendar

import (
	"context"
	"fmt"

	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/gcalendar"
)

// EventStore is the part of the Google Calendar client the publisher drives.
type EventStore interface {
	UpsertEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type Config struct {
	CalendarID string
	Timezone   string
}

type publisher struct {
	store EventStore
	cfg   Config
}

// New returns a booking.CalendarPublisher that keeps one event per approved booking.
func New(store EventStore, cfg Config) booking.CalendarPublisher {
	return &publisher{store: store, cfg: cfg}
}

// EventID derives a stable Google event id from a booking id. Google only accepts base32hex characters.
func EventID(bookingID int64) string {
	return fmt.Sprintf("shareitbooking%d", bookingID)
}

func (p *publisher) Publish(ctx context.Context, b model.Booking) error {
	_, err := p.store.UpsertEvent(ctx, gcalendar.EventRequest{
		CalendarID:  p.cfg.CalendarID,
		ID:          EventID(b.ID),
		Summary:     fmt.Sprintf("%s booked by %s", b.Item.Name, b.Booker.Name),
		Description: fmt.Sprintf("ShareIt booking #%d for item #%d", b.ID, b.Item.ID),
		StartTime:   b.Start,
		EndTime:     b.End,
		Timezone:    p.cfg.Timezone,
	})
	return err
}

func (p *publisher) Withdraw(ctx context.Context, b model.Booking) error {
	return p.store.DeleteEvent(ctx, p.cfg.CalendarID, EventID(b.ID))
}
