package model

// Item is something a user lends out. Available=false blocks new bookings.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}
