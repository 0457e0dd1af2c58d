package model

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// BookingItem is the part of the booked item a booking carries around.
type BookingItem struct {
	ID      int64
	Name    string
	OwnerID int64
}

// BookingUser is the part of the booker a booking carries around.
type BookingUser struct {
	ID   int64
	Name string
}

// Booking reserves an item for [Start, End]. Version grows on every status write.
type Booking struct {
	ID      int64
	Start   time.Time
	End     time.Time
	Item    BookingItem
	Booker  BookingUser
	Status  BookingStatus
	Version int64
}
